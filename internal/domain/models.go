package domain

import (
	"context"
	"time"
)

// SearchQuery represents one collection request
type SearchQuery struct {
	SearchTerm   string
	Forums       []string
	PostLimit    int
	CommentLimit int
}

// Post is a forum submission returned by a search
type Post struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	IsSelf bool   `json:"is_self"`
	Forum  string `json:"forum"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Score  int    `json:"score"`
}

// Comment is a reply attached to a post
type Comment struct {
	ID     string `json:"id"`
	Body   string `json:"body"`
	Score  int    `json:"score"`
	Author string `json:"author"`
}

// CollectedReview is the combined summarization input of one collection pass
type CollectedReview struct {
	CombinedText      string `json:"-"`
	PostsProcessed    int    `json:"posts_processed"`
	CommentsCollected int    `json:"comments_collected"`
}

// LookupRecord is one history line
type LookupRecord struct {
	RequestID         string    `json:"request_id"`
	Title             string    `json:"title"`
	Forums            []string  `json:"forums"`
	PostsProcessed    int       `json:"posts_processed"`
	CommentsCollected int       `json:"comments_collected"`
	Outcome           string    `json:"outcome"`
	Summary           string    `json:"summary,omitempty"`
	Error             string    `json:"error,omitempty"`
	Provider          string    `json:"provider,omitempty"`
	Model             string    `json:"model,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ForumClient defines the interface for searching forums and reading comments.
// ListComments returns the comments already available for the post, in
// listing order, without expanding "load more" stubs.
type ForumClient interface {
	Search(ctx context.Context, forums []string, term string, limit int) ([]Post, error)
	ListComments(ctx context.Context, post Post) ([]Comment, error)
}
