package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyQuery   = errors.New("search term is empty")
	ErrInvalidLimit = errors.New("post and comment limits must be positive")
	ErrNoForums     = errors.New("no forums to search")
)

// SearchError is returned when the forum search call fails
type SearchError struct {
	Forums []string
	Term   string
	Err    error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search r/%s for %q: %v", strings.Join(e.Forums, "+"), e.Term, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// CommentFetchError is returned when listing the comments of a post fails
type CommentFetchError struct {
	PostID string
	Err    error
}

func (e *CommentFetchError) Error() string {
	return fmt.Sprintf("list comments for post %s: %v", e.PostID, e.Err)
}

func (e *CommentFetchError) Unwrap() error { return e.Err }

// ClientInitError means a forum or summarization client could not be built.
type ClientInitError struct {
	Client string
	Err    error
}

func (e *ClientInitError) Error() string {
	return fmt.Sprintf("initialize %s client: %v", e.Client, e.Err)
}

func (e *ClientInitError) Unwrap() error { return e.Err }
