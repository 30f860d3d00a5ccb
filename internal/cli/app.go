package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/qepting91/reddit-book-reviews/internal/collector"
	"github.com/qepting91/reddit-book-reviews/internal/config"
	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/ingest"
	"github.com/qepting91/reddit-book-reviews/internal/review"
	"github.com/qepting91/reddit-book-reviews/internal/summarizer"
)

// app holds the long-lived clients behind a lookup service.
type app struct {
	service *review.Service
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// resolveForums prefers the CSV forum list when FORUMS_FILE is set.
func resolveForums(cfg *config.Config) ([]string, error) {
	if cfg.ForumsFile == "" {
		return cfg.Forums, nil
	}
	return ingest.LoadForums(cfg.ForumsFile)
}

// newApp builds the forum client, summarizer and lookup service from cfg.
// override, when set, adjusts the configured forums and limits.
func newApp(ctx context.Context, cfg *config.Config, override func(*review.Settings), history chan<- domain.LookupRecord, logger *slog.Logger) (*app, error) {
	forums, err := resolveForums(cfg)
	if err != nil {
		return nil, err
	}

	forum, err := collector.NewCollector(collector.Options{
		Mode:         cfg.CollectorMode,
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		Username:     cfg.RedditUsername,
		Password:     cfg.RedditPassword,
		UserAgent:    cfg.RedditUserAgent,
		BaseURL:      cfg.RedditBaseURL,
		HTTPCache:    cfg.RedditHTTPCache,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Collector initialized", "mode", cfg.CollectorMode)

	sumCfg := summarizer.Config{
		Provider:    cfg.SummarizerProvider,
		Model:       cfg.SummarizerModel,
		APIKey:      cfg.SummarizerAPIKey(),
		BaseURL:     cfg.SummarizerBaseURL,
		Temperature: cfg.SummarizerTemperature,
		MaxTokens:   cfg.SummarizerMaxTokens,
		Timeout:     cfg.SummarizerTimeout,
	}
	sum, err := summarizer.New(ctx, sumCfg)
	if err != nil {
		return nil, err
	}
	model := summarizer.ModelFor(sumCfg)
	logger.Info("Summarizer initialized", "provider", cfg.SummarizerProvider, "model", model)

	a := &app{}
	if c, ok := sum.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	settings := review.Settings{
		Forums:       forums,
		PostLimit:    cfg.PostLimit,
		CommentLimit: cfg.CommentLimit,
		Provider:     cfg.SummarizerProvider,
		Model:        model,
	}
	if override != nil {
		override(&settings)
	}
	a.service = review.NewService(forum, sum, settings, history, logger)
	return a, nil
}
