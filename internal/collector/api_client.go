package collector

import (
	"context"
	"fmt"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient searches reddit through the authenticated OAuth API.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(id, secret, user, pass, userAgent string) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, err
	}

	return &APIClient{client: client, limiter: newLimiter(apiInterval)}, nil
}

func (ac *APIClient) Search(ctx context.Context, forums []string, term string, limit int) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, &domain.SearchError{Forums: forums, Term: term, Err: err}
	}

	opts := &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: limit},
		},
		Sort: "relevance",
	}
	posts, _, err := ac.client.Subreddit.SearchPosts(ctx, term, multireddit(forums), opts)
	if err != nil {
		return nil, &domain.SearchError{Forums: forums, Term: term, Err: fmt.Errorf("authenticated api error: %w", err)}
	}

	result := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		result = append(result, domain.Post{
			ID:     p.ID,
			Title:  p.Title,
			Body:   p.Body,
			IsSelf: p.IsSelfPost,
			Forum:  p.SubredditNamePrefixed,
			Author: p.Author,
			URL:    p.URL,
			Score:  p.Score,
		})
	}
	return result, nil
}

func (ac *APIClient) ListComments(ctx context.Context, post domain.Post) ([]domain.Comment, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, &domain.CommentFetchError{PostID: post.ID, Err: err}
	}

	pc, _, err := ac.client.Post.Get(ctx, post.ID)
	if err != nil {
		return nil, &domain.CommentFetchError{PostID: post.ID, Err: fmt.Errorf("authenticated api error: %w", err)}
	}
	return flattenAPIComments(pc.Comments), nil
}

// flattenAPIComments walks the comment forest breadth first: all top-level
// comments, then their replies, and so on. "More" stubs are not expanded.
func flattenAPIComments(roots []*reddit.Comment) []domain.Comment {
	var out []domain.Comment
	queue := append([]*reddit.Comment(nil), roots...)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		out = append(out, domain.Comment{
			ID:     c.ID,
			Body:   c.Body,
			Score:  c.Score,
			Author: c.Author,
		})
		queue = append(queue, c.Replies.Comments...)
	}
	return out
}
