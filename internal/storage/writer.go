package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

// WriterService implements the Monitor Pattern for thread safety: it is the
// only goroutine touching the history file.
type WriterService struct {
	FilePath string
	Logger   *slog.Logger
}

// Start appends every record from input to FilePath as NDJSON until input is
// closed.
func (w *WriterService) Start(wg *sync.WaitGroup, input <-chan domain.LookupRecord) {
	defer wg.Done()

	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(w.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("History directory unavailable", "path", dir, "err", err)
		}
	}

	f, err := os.OpenFile(w.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("History file unavailable, records will be discarded", "path", w.FilePath, "err", err)
		for range input {
		}
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)

	for rec := range input {
		// Write as NDJSON
		if err := enc.Encode(rec); err != nil {
			logger.Error("History write failed", "request_id", rec.RequestID, "err", err)
		}
	}
}

// Load reads the history file. Malformed lines are skipped and a missing
// file is an empty history.
func Load(path string) ([]domain.LookupRecord, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []domain.LookupRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec domain.LookupRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, scanner.Err()
}
