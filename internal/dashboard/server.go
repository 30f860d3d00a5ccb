// Package dashboard renders charts over the lookup history.
package dashboard

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/storage"
)

// coverageWindow caps the bar chart to the most recent lookups.
const coverageWindow = 20

// OutcomeShare is one slice of the outcome pie.
type OutcomeShare struct {
	Outcome string
	Count   int
}

// Coverage is the source volume behind one lookup.
type Coverage struct {
	Labels   []string
	Posts    []int
	Comments []int
}

// Handler serves the stats page built from the history file on each request.
func Handler(historyFile string, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := storage.Load(historyFile)
		if err != nil {
			logger.Error("History unreadable", "path", historyFile, "err", err)
			http.Error(w, "history unavailable", http.StatusInternalServerError)
			return
		}

		page := components.NewPage()
		page.SetPageTitle("Book Review Lookups")
		page.AddCharts(outcomePie(OutcomeShares(records)), coverageBar(SourceCoverage(records, coverageWindow)))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(w); err != nil {
			logger.Error("Dashboard render failed", "err", err)
		}
	}
}

// OutcomeShares counts lookups per outcome, ordered by outcome name.
func OutcomeShares(records []domain.LookupRecord) []OutcomeShare {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Outcome]++
	}

	shares := make([]OutcomeShare, 0, len(counts))
	for k, v := range counts {
		shares = append(shares, OutcomeShare{Outcome: k, Count: v})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].Outcome < shares[j].Outcome })
	return shares
}

// SourceCoverage returns posts and comments per lookup for the last n
// records, oldest first.
func SourceCoverage(records []domain.LookupRecord, n int) Coverage {
	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}

	var c Coverage
	for _, rec := range records {
		c.Labels = append(c.Labels, rec.Title)
		c.Posts = append(c.Posts, rec.PostsProcessed)
		c.Comments = append(c.Comments, rec.CommentsCollected)
	}
	return c
}

func outcomePie(shares []OutcomeShare) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Lookup Outcomes"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	items := make([]opts.PieData, 0, len(shares))
	for _, s := range shares {
		items = append(items, opts.PieData{Name: s.Outcome, Value: s.Count})
	}
	pie.AddSeries("Lookups", items)
	return pie
}

func coverageBar(c Coverage) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Source Coverage"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	posts := make([]opts.BarData, 0, len(c.Posts))
	for _, v := range c.Posts {
		posts = append(posts, opts.BarData{Value: v})
	}
	comments := make([]opts.BarData, 0, len(c.Comments))
	for _, v := range c.Comments {
		comments = append(comments, opts.BarData{Value: v})
	}
	bar.SetXAxis(c.Labels).
		AddSeries("Posts", posts).
		AddSeries("Comments", comments)
	return bar
}
