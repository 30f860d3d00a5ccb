// Package cli defines the bookreviews command-line interface.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qepting91/reddit-book-reviews/internal/config"
	"github.com/qepting91/reddit-book-reviews/internal/logging"
)

// state is filled by the root command before any subcommand runs.
type state struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Execute builds the root command, runs it with args and returns any error.
func Execute(ctx context.Context, args []string) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	st := &state{}

	cmd := &cobra.Command{
		Use:           "bookreviews",
		Short:         "Summarize what Reddit readers think of a book",
		Long:          "bookreviews searches book subreddits for discussion of a title, keeps the substantial posts and well-received comments, and asks an LLM for a short review summary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				cfg.LogLevel = f.Value.String()
			}

			st.cfg = cfg
			st.logger = logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			slog.SetDefault(st.logger)
			st.logger.Debug("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error), overrides LOG_LEVEL")

	cmd.AddCommand(
		newServeCommand(st),
		newLookupCommand(st),
	)
	return cmd
}
