package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("status 503")
	err := &SearchError{Forums: []string{"books", "literature"}, Term: `"Dune"`, Err: cause}

	assert.Equal(t, `search r/books+literature for "\"Dune\"": status 503`, err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestCommentFetchError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	var err error = &CommentFetchError{PostID: "abc", Err: cause}

	var target *CommentFetchError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "abc", target.PostID)
	assert.ErrorIs(t, err, cause)
}

func TestClientInitError_Message(t *testing.T) {
	err := &ClientInitError{Client: "groq", Err: errors.New("api key is required")}
	assert.Equal(t, "initialize groq client: api key is required", err.Error())
}
