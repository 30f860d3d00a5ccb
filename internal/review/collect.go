// Package review turns forum search results into summarization input and
// runs the lookup cycle on top of it.
package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// Quality predicate thresholds.
const (
	MinPostBodyLen    = 100
	MinCommentBodyLen = 50
	MinCommentScore   = 5
)

// Collect searches the query's forums and combines the qualifying posts and
// their first qualifying comments into one text blob.
//
// Client errors are returned unchanged and no partial review is produced.
func Collect(ctx context.Context, client domain.ForumClient, q domain.SearchQuery) (domain.CollectedReview, error) {
	if err := Validate(q); err != nil {
		return domain.CollectedReview{}, err
	}

	posts, err := client.Search(ctx, q.Forums, q.SearchTerm, q.PostLimit)
	if err != nil {
		return domain.CollectedReview{}, err
	}
	if len(posts) > q.PostLimit {
		posts = posts[:q.PostLimit]
	}

	var (
		sb     strings.Builder
		review domain.CollectedReview
	)
	for _, p := range posts {
		if !acceptPost(p) {
			continue
		}
		review.PostsProcessed++
		fmt.Fprintf(&sb, "\n\n--- POST %d: %s ---\n", review.PostsProcessed, strings.ToUpper(p.Title))
		sb.WriteString(p.Body)

		comments, err := client.ListComments(ctx, p)
		if err != nil {
			return domain.CollectedReview{}, err
		}

		accepted := topComments(comments, q.CommentLimit)
		review.CommentsCollected += len(accepted)
		if len(accepted) > 0 {
			sb.WriteString("\n\n--- TOP COMMENTS ---\n")
			sb.WriteString(strings.Join(accepted, "\n"))
		}
	}

	review.CombinedText = sb.String()
	return review, nil
}

// Validate rejects queries that must not reach the network.
func Validate(q domain.SearchQuery) error {
	if strings.TrimSpace(q.SearchTerm) == "" {
		return domain.ErrEmptyQuery
	}
	if q.PostLimit <= 0 || q.CommentLimit <= 0 {
		return domain.ErrInvalidLimit
	}
	if len(q.Forums) == 0 {
		return domain.ErrNoForums
	}
	return nil
}

func acceptPost(p domain.Post) bool {
	return p.IsSelf && utf8.RuneCountInString(p.Body) > MinPostBodyLen
}

func acceptComment(c domain.Comment) bool {
	return c.Score >= MinCommentScore && utf8.RuneCountInString(c.Body) > MinCommentBodyLen
}

// topComments keeps the first limit qualifying comments in listing order.
// Comments after the limit is reached are not looked at.
func topComments(comments []domain.Comment, limit int) []string {
	var bodies []string
	for _, c := range comments {
		if len(bodies) >= limit {
			break
		}
		if acceptComment(c) {
			bodies = append(bodies, c.Body)
		}
	}
	return bodies
}
