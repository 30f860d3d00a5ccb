package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/summarizer"
)

// OutcomeKind tells the caller which of the four lookup results it holds.
type OutcomeKind int

const (
	OutcomeSummary OutcomeKind = iota
	OutcomeNoData
	OutcomeCollectionFailed
	OutcomeSummarizationFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSummary:
		return "summary"
	case OutcomeNoData:
		return "no_data"
	case OutcomeCollectionFailed:
		return "collection_failed"
	case OutcomeSummarizationFailed:
		return "summarization_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one lookup. Err is set for the two failure kinds.
type Outcome struct {
	RequestID string
	Kind      OutcomeKind
	Title     string
	Summary   string
	Review    domain.CollectedReview
	Query     domain.SearchQuery
	Err       error
}

// Settings are the per-process lookup parameters.
type Settings struct {
	Forums       []string
	PostLimit    int
	CommentLimit int
	Provider     string
	Model        string
}

// Service runs collection and summarization for one title at a time per
// call. It holds no per-request state and may be shared between goroutines.
type Service struct {
	forum      domain.ForumClient
	summarizer summarizer.Summarizer
	settings   Settings
	history    chan<- domain.LookupRecord
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires the lookup cycle. history may be nil to disable recording.
func NewService(forum domain.ForumClient, s summarizer.Summarizer, settings Settings, history chan<- domain.LookupRecord, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		forum:      forum,
		summarizer: s,
		settings:   settings,
		history:    history,
		logger:     logger,
		now:        time.Now,
	}
}

// Query builds the search query for a title from the service settings.
func (s *Service) Query(title string) domain.SearchQuery {
	return domain.SearchQuery{
		SearchTerm:   strings.TrimSpace(title),
		Forums:       append([]string(nil), s.settings.Forums...),
		PostLimit:    s.settings.PostLimit,
		CommentLimit: s.settings.CommentLimit,
	}
}

// Lookup collects reviews for title and summarizes them.
func (s *Service) Lookup(ctx context.Context, title string) (Outcome, error) {
	return s.Run(ctx, s.Query(title))
}

// Run executes one collection-and-summarize cycle for q. The returned error
// is non-nil only for queries rejected before any network call; every other
// result, failures included, is reported through Outcome.Kind.
func (s *Service) Run(ctx context.Context, q domain.SearchQuery) (Outcome, error) {
	if err := Validate(q); err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		RequestID: uuid.NewString(),
		Title:     strings.Trim(q.SearchTerm, `"`),
		Query:     q,
	}
	log := s.logger.With("request_id", out.RequestID, "title", out.Title)
	log.Info("Collecting reviews", "forums", strings.Join(q.Forums, "+"), "post_limit", q.PostLimit, "comment_limit", q.CommentLimit)

	rev, err := Collect(ctx, s.forum, q)
	switch {
	case err != nil:
		out.Kind = OutcomeCollectionFailed
		out.Err = err
		log.Error("Collection failed", "err", err)
	case rev.CombinedText == "":
		out.Kind = OutcomeNoData
		log.Warn("No qualifying reviews found")
	default:
		out.Review = rev
		log.Info("Collection complete", "posts_processed", rev.PostsProcessed, "comments_collected", rev.CommentsCollected)

		summary, err := s.summarizer.Summarize(ctx, summarizer.SystemPrompt, rev.CombinedText)
		if err != nil {
			out.Kind = OutcomeSummarizationFailed
			out.Err = asSummarizationError(s.settings.Provider, err)
			log.Error("Summarization failed", "err", err)
		} else {
			out.Kind = OutcomeSummary
			out.Summary = summary
		}
	}

	s.record(ctx, out)
	return out, nil
}

// asSummarizationError keeps the tagged type even for summarizers that
// return plain errors.
func asSummarizationError(provider string, err error) error {
	var se *summarizer.SummarizationError
	if errors.As(err, &se) {
		return err
	}
	return &summarizer.SummarizationError{Provider: provider, Err: err}
}

func (s *Service) record(ctx context.Context, out Outcome) {
	if s.history == nil {
		return
	}

	rec := domain.LookupRecord{
		RequestID:         out.RequestID,
		Title:             out.Title,
		Forums:            out.Query.Forums,
		PostsProcessed:    out.Review.PostsProcessed,
		CommentsCollected: out.Review.CommentsCollected,
		Outcome:           out.Kind.String(),
		Summary:           out.Summary,
		Provider:          s.settings.Provider,
		Model:             s.settings.Model,
		CreatedAt:         s.now().UTC(),
	}
	if out.Err != nil {
		rec.Error = out.Err.Error()
	}

	select {
	case s.history <- rec:
	case <-ctx.Done():
		s.logger.Warn("History record dropped", "request_id", out.RequestID, "err", ctx.Err())
	}
}
