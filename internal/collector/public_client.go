package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"golang.org/x/time/rate"
)

const defaultPublicBaseURL = "https://www.reddit.com"

// PublicOptions configures a PublicClient.
type PublicOptions struct {
	UserAgent string
	BaseURL   string        // defaults to https://www.reddit.com
	HTTPCache bool          // keep an in-memory cache of cacheable responses
	Interval  time.Duration // minimum gap between requests, 0 keeps the default
}

// PublicClient reads reddit's unauthenticated .json endpoints.
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	baseURL    string
}

type redditListing struct {
	Data struct {
		Children []redditThing `json:"children"`
	} `json:"data"`
}

type redditThing struct {
	Kind string `json:"kind"`
	Data struct {
		ID        string          `json:"id"`
		Title     string          `json:"title"`
		SelfText  string          `json:"selftext"`
		IsSelf    bool            `json:"is_self"`
		Subreddit string          `json:"subreddit_name_prefixed"`
		Author    string          `json:"author"`
		URL       string          `json:"url"`
		Score     int             `json:"score"`
		Body      string          `json:"body"`
		Replies   json.RawMessage `json:"replies"`
	} `json:"data"`
}

func NewPublicClient(opts PublicOptions) (*PublicClient, error) {
	if opts.UserAgent == "" {
		return nil, fmt.Errorf("REDDIT_USER_AGENT is required for public mode")
	}
	base := opts.BaseURL
	if base == "" {
		base = defaultPublicBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	interval := opts.Interval
	if interval == 0 {
		interval = publicInterval
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	if opts.HTTPCache {
		httpClient.Transport = httpcache.NewMemoryCacheTransport()
	}

	return &PublicClient{
		httpClient: httpClient,
		limiter:    newLimiter(interval),
		userAgent:  opts.UserAgent,
		baseURL:    base,
	}, nil
}

func (pc *PublicClient) Search(ctx context.Context, forums []string, term string, limit int) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("q", term)
	q.Set("restrict_sr", "1")
	q.Set("sort", "relevance")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("raw_json", "1")
	endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", pc.baseURL, multireddit(forums), q.Encode())

	var listing redditListing
	if err := pc.getJSON(ctx, endpoint, &listing); err != nil {
		return nil, &domain.SearchError{Forums: forums, Term: term, Err: err}
	}

	var posts []domain.Post
	for _, child := range listing.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		d := child.Data
		posts = append(posts, domain.Post{
			ID:     d.ID,
			Title:  d.Title,
			Body:   d.SelfText,
			IsSelf: d.IsSelf,
			Forum:  d.Subreddit,
			Author: d.Author,
			URL:    d.URL,
			Score:  d.Score,
		})
	}
	return posts, nil
}

func (pc *PublicClient) ListComments(ctx context.Context, post domain.Post) ([]domain.Comment, error) {
	endpoint := fmt.Sprintf("%s/comments/%s.json?raw_json=1", pc.baseURL, url.PathEscape(post.ID))

	// Reddit returns [postListing, commentListing]
	var listings []redditListing
	if err := pc.getJSON(ctx, endpoint, &listings); err != nil {
		return nil, &domain.CommentFetchError{PostID: post.ID, Err: err}
	}
	if len(listings) < 2 {
		return nil, nil
	}

	comments, err := flattenPublicComments(listings[1].Data.Children)
	if err != nil {
		return nil, &domain.CommentFetchError{PostID: post.ID, Err: err}
	}
	return comments, nil
}

func (pc *PublicClient) getJSON(ctx context.Context, endpoint string, dst any) error {
	if err := pc.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reddit public access status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// flattenPublicComments walks the comment forest breadth first, skipping
// "more" stubs. Empty replies arrive as "" rather than a listing.
func flattenPublicComments(roots []redditThing) ([]domain.Comment, error) {
	var out []domain.Comment
	queue := append([]redditThing(nil), roots...)
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if t.Kind != "t1" {
			continue
		}
		d := t.Data
		out = append(out, domain.Comment{
			ID:     d.ID,
			Body:   d.Body,
			Score:  d.Score,
			Author: d.Author,
		})

		raw := bytes.TrimSpace(d.Replies)
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var replies redditListing
		if err := json.Unmarshal(raw, &replies); err != nil {
			return nil, fmt.Errorf("decode replies of %s: %w", d.ID, err)
		}
		queue = append(queue, replies.Data.Children...)
	}
	return out, nil
}
