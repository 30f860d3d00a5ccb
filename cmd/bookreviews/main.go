package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/qepting91/reddit-book-reviews/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
