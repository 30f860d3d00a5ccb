package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/reddit-book-reviews/internal/dashboard"
	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/storage"
	"github.com/qepting91/reddit-book-reviews/internal/web"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup form, results and stats over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), st)
		},
	}
}

func serve(ctx context.Context, st *state) error {
	cfg, logger := st.cfg, st.logger

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	history := make(chan domain.LookupRecord, 16)
	var writerWg sync.WaitGroup
	writer := &storage.WriterService{FilePath: cfg.HistoryFile, Logger: logger}
	writerWg.Add(1)
	go writer.Start(&writerWg, history)

	a, err := newApp(ctx, cfg, nil, history, logger)
	if err != nil {
		close(history)
		writerWg.Wait()
		return err
	}
	defer a.Close()

	mux := http.NewServeMux()
	web.RegisterRoutes(mux, web.NewHandler(a.service, logger), dashboard.Handler(cfg.HistoryFile, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting web UI", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			close(history)
			writerWg.Wait()
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		// Handlers may still hold the history channel; leave it open.
		logger.Error("Graceful shutdown failed", "err", err)
		return err
	}

	close(history)
	writerWg.Wait()
	logger.Info("Server stopped. History saved.")
	return nil
}
