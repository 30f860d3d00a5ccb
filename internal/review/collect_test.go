package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// --- Mock implementations ---

type fakeForum struct {
	posts       []domain.Post
	comments    map[string][]domain.Comment
	searchErr   error
	commentErr  error
	searchCalls int
	gotLimit    int
	gotForums   []string
	listed      []string
}

func (f *fakeForum) Search(_ context.Context, forums []string, _ string, limit int) ([]domain.Post, error) {
	f.searchCalls++
	f.gotLimit = limit
	f.gotForums = forums
	return f.posts, f.searchErr
}

func (f *fakeForum) ListComments(_ context.Context, p domain.Post) ([]domain.Comment, error) {
	f.listed = append(f.listed, p.ID)
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	return f.comments[p.ID], nil
}

func text(n int) string { return strings.Repeat("x", n) }

func query(postLimit, commentLimit int) domain.SearchQuery {
	return domain.SearchQuery{
		SearchTerm:   `"Project Hail Mary"`,
		Forums:       []string{"books", "literature"},
		PostLimit:    postLimit,
		CommentLimit: commentLimit,
	}
}

func TestCollect_LinkPostSkippedAndCommentLimit(t *testing.T) {
	f := &fakeForum{
		posts: []domain.Post{
			{ID: "A", Title: "link post", IsSelf: false, URL: "https://example.com"},
			{ID: "B", Title: "Finished it", IsSelf: true, Body: text(150)},
		},
		comments: map[string][]domain.Comment{
			"B": {
				{ID: "c1", Score: 10, Body: "first " + text(54)},
				{ID: "c2", Score: 3, Body: "second " + text(53)},
				{ID: "c3", Score: 7, Body: "third " + text(54)},
			},
		},
	}

	got, err := Collect(context.Background(), f, query(2, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, got.PostsProcessed)
	assert.Equal(t, 2, got.CommentsCollected)
	assert.Equal(t, []string{"B"}, f.listed)

	want := "\n\n--- POST 1: FINISHED IT ---\n" + text(150) +
		"\n\n--- TOP COMMENTS ---\n" + "first " + text(54) + "\n" + "third " + text(54)
	assert.Equal(t, want, got.CombinedText)
}

func TestCollect_FirstQualifyingNotTopScored(t *testing.T) {
	f := &fakeForum{
		posts: []domain.Post{{ID: "P", Title: "t", IsSelf: true, Body: text(101)}},
		comments: map[string][]domain.Comment{
			"P": {
				{Score: 5, Body: "low " + text(50)},
				{Score: 900, Body: "high " + text(50)},
			},
		},
	}

	got, err := Collect(context.Background(), f, query(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCollected)
	assert.Contains(t, got.CombinedText, "low ")
	assert.NotContains(t, got.CombinedText, "high ")
}

func TestCollect_PostPredicateBoundaries(t *testing.T) {
	f := &fakeForum{
		posts: []domain.Post{
			{ID: "exact", Title: "exactly 100", IsSelf: true, Body: text(100)},
			{ID: "empty", Title: "empty", IsSelf: true},
			{ID: "link", Title: "long link", IsSelf: false, Body: text(500)},
			// 101 runes, more than 101 bytes
			{ID: "runes", Title: "émigré", IsSelf: true, Body: strings.Repeat("é", 101)},
		},
	}

	got, err := Collect(context.Background(), f, query(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, got.PostsProcessed)
	assert.Equal(t, []string{"runes"}, f.listed)
	assert.Contains(t, got.CombinedText, "--- POST 1: ÉMIGRÉ ---")
	assert.NotContains(t, got.CombinedText, "TOP COMMENTS")
}

func TestCollect_CommentPredicateBoundaries(t *testing.T) {
	f := &fakeForum{
		posts: []domain.Post{{ID: "P", Title: "t", IsSelf: true, Body: text(200)}},
		comments: map[string][]domain.Comment{
			"P": {
				{Score: 4, Body: text(300)},
				{Score: 50, Body: text(50)},
				{Score: 5, Body: "ok " + text(48)},
			},
		},
	}

	got, err := Collect(context.Background(), f, query(1, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCollected)
	assert.True(t, strings.HasSuffix(got.CombinedText, "\n\n--- TOP COMMENTS ---\nok "+text(48)))
}

func TestCollect_NoQualifyingPosts(t *testing.T) {
	f := &fakeForum{posts: []domain.Post{{ID: "A", IsSelf: false}}}

	got, err := Collect(context.Background(), f, query(2, 2))
	require.NoError(t, err)
	assert.Equal(t, domain.CollectedReview{}, got)
	assert.Empty(t, f.listed)
}

func TestCollect_PostLimitIsRequestedAndEnforced(t *testing.T) {
	var posts []domain.Post
	for i := 0; i < 5; i++ {
		posts = append(posts, domain.Post{ID: string(rune('a' + i)), Title: "t", IsSelf: true, Body: text(120)})
	}
	f := &fakeForum{posts: posts}

	got, err := Collect(context.Background(), f, query(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, f.gotLimit)
	assert.Equal(t, []string{"books", "literature"}, f.gotForums)
	assert.Equal(t, 3, got.PostsProcessed)
	assert.Contains(t, got.CombinedText, "--- POST 3: T ---")
	assert.NotContains(t, got.CombinedText, "--- POST 4")
	assert.Equal(t, []string{"a", "b", "c"}, f.listed)
}

func TestCollect_Idempotent(t *testing.T) {
	f := &fakeForum{
		posts: []domain.Post{
			{ID: "1", Title: "one", IsSelf: true, Body: text(130)},
			{ID: "2", Title: "two", IsSelf: true, Body: text(140)},
		},
		comments: map[string][]domain.Comment{
			"1": {{Score: 9, Body: text(70)}},
			"2": {{Score: 6, Body: text(80)}, {Score: 8, Body: text(90)}},
		},
	}

	a, err := Collect(context.Background(), f, query(2, 2))
	require.NoError(t, err)
	b, err := Collect(context.Background(), f, query(2, 2))
	require.NoError(t, err)
	assert.Equal(t, a.CombinedText, b.CombinedText)
	assert.Equal(t, 3, a.CommentsCollected)
}

func TestCollect_DoesNotMutateInputs(t *testing.T) {
	posts := []domain.Post{{ID: "1", Title: "lower case", IsSelf: true, Body: text(130)}}
	f := &fakeForum{posts: posts}

	_, err := Collect(context.Background(), f, query(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "lower case", posts[0].Title)
}

func TestCollect_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		q    domain.SearchQuery
		want error
	}{
		{"empty term", domain.SearchQuery{SearchTerm: "  ", Forums: []string{"books"}, PostLimit: 1, CommentLimit: 1}, domain.ErrEmptyQuery},
		{"zero post limit", domain.SearchQuery{SearchTerm: "Dune", Forums: []string{"books"}, PostLimit: 0, CommentLimit: 1}, domain.ErrInvalidLimit},
		{"negative comment limit", domain.SearchQuery{SearchTerm: "Dune", Forums: []string{"books"}, PostLimit: 1, CommentLimit: -1}, domain.ErrInvalidLimit},
		{"no forums", domain.SearchQuery{SearchTerm: "Dune", PostLimit: 1, CommentLimit: 1}, domain.ErrNoForums},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeForum{}
			_, err := Collect(context.Background(), f, tt.q)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.searchCalls)
		})
	}
}

func TestCollect_PropagatesClientErrors(t *testing.T) {
	searchErr := &domain.SearchError{Term: "Dune", Err: errors.New("boom")}
	f := &fakeForum{searchErr: searchErr}
	_, err := Collect(context.Background(), f, query(1, 1))
	assert.Same(t, searchErr, err)

	commentErr := &domain.CommentFetchError{PostID: "1", Err: errors.New("boom")}
	f = &fakeForum{
		posts:      []domain.Post{{ID: "1", Title: "t", IsSelf: true, Body: text(130)}},
		commentErr: commentErr,
	}
	got, err := Collect(context.Background(), f, query(1, 1))
	assert.Same(t, commentErr, err)
	assert.Equal(t, domain.CollectedReview{}, got)
}
