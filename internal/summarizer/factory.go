package summarizer

import (
	"context"
	"fmt"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// New selects the correct implementation based on cfg.Provider. Construction
// failures are returned as *domain.ClientInitError.
func New(ctx context.Context, cfg Config) (Summarizer, error) {
	cfg = cfg.withDefaults()

	var (
		s   Summarizer
		err error
	)
	switch cfg.Provider {
	case "groq", "openai":
		s, err = NewOpenAIProvider(cfg.Provider, cfg)
	case "anthropic":
		s, err = NewAnthropicProvider(cfg)
	case "google":
		s, err = NewGoogleProvider(ctx, cfg)
	case "mock":
		s = NewMockSummarizer()
	default:
		err = fmt.Errorf("unknown SUMMARIZER_PROVIDER: %s (use 'groq', 'openai', 'anthropic', 'google', or 'mock')", cfg.Provider)
	}
	if err != nil {
		return nil, &domain.ClientInitError{Client: "summarizer " + cfg.Provider, Err: err}
	}
	return s, nil
}

// ModelFor reports the model New would use for cfg.
func ModelFor(cfg Config) string {
	return cfg.withDefaults().Model
}
