package collector

import (
	"fmt"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// Options carries what every client mode may need.
type Options struct {
	Mode         string // api, public or mock
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
	BaseURL      string
	HTTPCache    bool
}

// NewCollector selects the correct implementation based on the mode.
// Construction failures are returned as *domain.ClientInitError.
func NewCollector(opts Options) (domain.ForumClient, error) {
	var (
		client domain.ForumClient
		err    error
	)

	switch opts.Mode {
	case "api":
		client, err = NewAPIClient(opts.ClientID, opts.ClientSecret, opts.Username, opts.Password, opts.UserAgent)
	case "public":
		client, err = NewPublicClient(PublicOptions{
			UserAgent: opts.UserAgent,
			BaseURL:   opts.BaseURL,
			HTTPCache: opts.HTTPCache,
		})
	case "mock":
		client = NewMockClient()
	default:
		err = fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'api', 'public', or 'mock')", opts.Mode)
	}
	if err != nil {
		return nil, &domain.ClientInitError{Client: "reddit " + opts.Mode, Err: err}
	}
	return client, nil
}
