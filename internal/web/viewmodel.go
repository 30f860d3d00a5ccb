package web

import (
	"strings"

	"github.com/qepting91/reddit-book-reviews/internal/review"
)

const defaultTitle = `"Project Hail Mary"`

const tokenLimitHint = "Hint: the combined text may have exceeded the model's token limit, and free tier rate limits are strict."

// FormView feeds the lookup form.
type FormView struct {
	Title string
	CSRF  string
	Error string
}

// ResultView is the display form of a lookup outcome.
type ResultView struct {
	Kind              review.OutcomeKind
	Title             string
	SummaryHTML       string
	Message           string
	Hint              string
	PostsProcessed    int
	CommentsCollected int
	PostLimit         int
	CommentLimit      int
}

func toResultView(out review.Outcome) ResultView {
	v := ResultView{
		Kind:         out.Kind,
		Title:        strings.Trim(out.Title, `"`),
		PostLimit:    out.Query.PostLimit,
		CommentLimit: out.Query.CommentLimit,
	}

	switch out.Kind {
	case review.OutcomeSummary:
		v.SummaryHTML = RenderMarkdown(out.Summary)
		v.PostsProcessed = out.Review.PostsProcessed
		v.CommentsCollected = out.Review.CommentsCollected
	case review.OutcomeNoData:
		v.Message = "Could not find enough high-quality reviews for " + v.Title + " in the target subreddits."
	case review.OutcomeCollectionFailed:
		v.Message = "Could not collect reviews: " + errString(out.Err)
	case review.OutcomeSummarizationFailed:
		v.Message = errString(out.Err)
		v.Hint = tokenLimitHint
	}
	return v
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
