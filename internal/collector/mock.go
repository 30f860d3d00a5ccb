package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// MockClient implements domain.ForumClient but returns fake data.
// Output depends only on the arguments, so repeated lookups match.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) Search(_ context.Context, forums []string, term string, limit int) ([]domain.Post, error) {
	if len(forums) == 0 {
		return nil, nil
	}
	title := strings.Trim(term, `"`)

	var posts []domain.Post
	for i := 0; i < limit; i++ {
		forum := forums[i%len(forums)]
		p := domain.Post{
			ID:     fmt.Sprintf("mock_%s_%d", forum, i),
			Title:  fmt.Sprintf("Just finished %s, thoughts?", title),
			Forum:  "r/" + forum,
			Author: "simulated_reader",
			URL:    "http://localhost/mock-url",
			Score:  100 - i,
			IsSelf: i%3 != 2,
		}
		if p.IsSelf {
			p.Body = fmt.Sprintf("I picked up %s on a friend's recommendation and read it over a weekend. "+
				"The pacing in the first half is slow but the payoff is worth it, and the narrator grew on me. "+
				"Curious what everyone else in r/%s thought about the ending.", title, forum)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (mc *MockClient) ListComments(_ context.Context, post domain.Post) ([]domain.Comment, error) {
	return []domain.Comment{
		{ID: post.ID + "_c0", Score: 42, Author: "simulated_critic",
			Body: "Loved the science and the humour, but the side characters felt thin in places."},
		{ID: post.ID + "_c1", Score: 2, Author: "simulated_lurker",
			Body: "Downvoted take that should never reach the summary because of its low score."},
		{ID: post.ID + "_c2", Score: 17, Author: "simulated_fan",
			Body: "The friendship at the core of the story is what made it for me. Cried twice."},
		{ID: post.ID + "_c3", Score: 9, Author: "simulated_skeptic",
			Body: "Too short."},
	}, nil
}
