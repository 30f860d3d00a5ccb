package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/qepting91/reddit-book-reviews/internal/review"
)

const pageCSS = `body{font-family:system-ui,sans-serif;max-width:56rem;margin:2rem auto;padding:0 1rem;color:#222}
form{display:flex;gap:.5rem;margin:1rem 0}
input[type=text]{flex:1;padding:.5rem;font-size:1rem}
button{padding:.5rem 1rem;font-size:1rem}
.notice{padding:.75rem 1rem;border-radius:4px;margin:1rem 0}
.success{background:#e6f4ea}.info{background:#e8f0fe}.warning{background:#fef7e0}.error{background:#fce8e6}
.metrics{color:#555;font-size:.9rem}`

func writeAll(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Layout wraps body in the page chrome.
func Layout(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(title), `</title><style>`, pageCSS, `</style></head><body>`,
			`<h1>Reddit Book Review Summarizer</h1>`,
			`<p>Enter a book title below to fetch and summarize community reviews. <a href="/stats">Lookup stats</a></p>`,
		); err != nil {
			return err
		}
		for _, c := range body {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return writeAll(w, `</body></html>`)
	})
}

// LookupForm renders the title form with its CSRF field.
func LookupForm(f FormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if f.Error != "" {
			if err := writeAll(w, `<div class="notice error" role="alert">`, templ.EscapeString(f.Error), `</div>`); err != nil {
				return err
			}
		}
		return writeAll(w,
			`<form method="post" action="/summary">`,
			`<input type="hidden" name="`, csrfFormField, `" value="`, templ.EscapeString(f.CSRF), `">`,
			`<label for="title" hidden>Enter Book Title</label>`,
			`<input type="text" id="title" name="title" value="`, templ.EscapeString(f.Title), `" `,
			`title="The system will fetch a few top reviews for this title.">`,
			`<button type="submit">Get Summary</button></form>`,
		)
	})
}

// Result renders one lookup outcome.
func Result(v ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch v.Kind {
		case review.OutcomeSummary:
			if err := writeAll(w,
				`<div class="notice success">Summary for: <strong>`, templ.EscapeString(v.Title), `</strong></div><hr>`,
				`<div class="notice info summary">`,
			); err != nil {
				return err
			}
			if err := templ.Raw(v.SummaryHTML).Render(ctx, w); err != nil {
				return err
			}
			return writeAll(w,
				`</div><hr><h2>Data Metrics</h2><ul class="metrics">`,
				`<li>Posts Analyzed: <strong>`, strconv.Itoa(v.PostsProcessed), `</strong> of `, strconv.Itoa(v.PostLimit), `</li>`,
				`<li>Comments Analyzed: <strong>`, strconv.Itoa(v.CommentsCollected), `</strong> (max `, strconv.Itoa(v.CommentLimit), ` per post)</li>`,
				`</ul>`,
			)
		case review.OutcomeSummarizationFailed:
			if err := writeAll(w,
				`<div class="notice success">Summary for: <strong>`, templ.EscapeString(v.Title), `</strong></div>`,
				`<div class="notice error" role="alert">`, templ.EscapeString(v.Message), `</div>`,
			); err != nil {
				return err
			}
			return writeAll(w, `<div class="notice warning">`, templ.EscapeString(v.Hint), `</div>`)
		case review.OutcomeCollectionFailed:
			return writeAll(w, `<div class="notice error" role="alert">`, templ.EscapeString(v.Message), `</div>`)
		default:
			return writeAll(w, `<div class="notice warning">`, templ.EscapeString(v.Message), `</div>`)
		}
	})
}
