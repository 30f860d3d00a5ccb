package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/review"
	"github.com/qepting91/reddit-book-reviews/internal/storage"
)

// ErrNoSummary is returned by the lookup command when no summary was produced.
var ErrNoSummary = errors.New("no summary produced")

type lookupOptions struct {
	forums       string
	postLimit    int
	commentLimit int
}

func newLookupCommand(st *state) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup TITLE",
		Short: "Summarize reviews for one title and print the result",
		Example: `  bookreviews lookup '"A Little Life"' --forums books+literature
  bookreviews lookup --post-limit 3 Project Hail Mary`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, st, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.forums, "forums", "", "Forums to search joined by '+', overrides FORUMS")
	cmd.Flags().IntVar(&opts.postLimit, "post-limit", 0, "Maximum posts to evaluate, overrides POST_LIMIT")
	cmd.Flags().IntVar(&opts.commentLimit, "comment-limit", 0, "Maximum comments kept per post, overrides COMMENT_LIMIT")
	return cmd
}

func (o *lookupOptions) apply(cmd *cobra.Command) func(*review.Settings) {
	return func(s *review.Settings) {
		if cmd.Flags().Changed("forums") {
			s.Forums = splitForums(o.forums)
		}
		if cmd.Flags().Changed("post-limit") {
			s.PostLimit = o.postLimit
		}
		if cmd.Flags().Changed("comment-limit") {
			s.CommentLimit = o.commentLimit
		}
	}
}

func splitForums(v string) []string {
	var out []string
	for _, f := range strings.Split(v, "+") {
		f = strings.TrimPrefix(strings.TrimSpace(f), "r/")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func runLookup(cmd *cobra.Command, st *state, opts *lookupOptions, title string) error {
	ctx := cmd.Context()

	history := make(chan domain.LookupRecord, 1)
	var writerWg sync.WaitGroup
	writer := &storage.WriterService{FilePath: st.cfg.HistoryFile, Logger: st.logger}
	writerWg.Add(1)
	go writer.Start(&writerWg, history)
	defer func() {
		close(history)
		writerWg.Wait()
	}()

	a, err := newApp(ctx, st.cfg, opts.apply(cmd), history, st.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.service.Lookup(ctx, title)
	if err != nil {
		return err
	}
	return printOutcome(cmd.OutOrStdout(), out)
}

func printOutcome(w io.Writer, out review.Outcome) error {
	rule := strings.Repeat("=", 60)

	switch out.Kind {
	case review.OutcomeSummary:
		fmt.Fprintf(w, "\n%s\nFINAL BOOK REVIEW SUMMARY\n", rule)
		fmt.Fprintf(w, "Source: r/%s | Book: %s\n", strings.Join(out.Query.Forums, "+"), out.Query.SearchTerm)
		fmt.Fprintf(w, "%s\n%s\n", strings.Repeat("-", 60), out.Summary)
		fmt.Fprintf(w, "Posts analyzed: %d | Comments analyzed: %d\n%s\n", out.Review.PostsProcessed, out.Review.CommentsCollected, rule)
		return nil
	case review.OutcomeNoData:
		fmt.Fprintln(w, "\nFinal output failure: Could not find enough data to summarize.")
		return ErrNoSummary
	default:
		fmt.Fprintf(w, "\nFinal output failure: %v\n", out.Err)
		return fmt.Errorf("%w: %s: %w", ErrNoSummary, out.Kind, out.Err)
	}
}
