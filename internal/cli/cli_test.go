package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/review"
	"github.com/qepting91/reddit-book-reviews/internal/storage"
)

func mockEnv(t *testing.T) string {
	t.Helper()
	history := filepath.Join(t.TempDir(), "history.json")
	t.Setenv("COLLECTOR_MODE", "mock")
	t.Setenv("SUMMARIZER_PROVIDER", "mock")
	t.Setenv("SUMMARIZER_MODEL", "")
	t.Setenv("FORUMS", "books+literature")
	t.Setenv("FORUMS_FILE", "")
	t.Setenv("POST_LIMIT", "2")
	t.Setenv("COMMENT_LIMIT", "2")
	t.Setenv("HISTORY_FILE", history)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")
	return history
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLookup_PrintsSummaryAndRecordsHistory(t *testing.T) {
	history := mockEnv(t)

	out, err := runCommand(t, "lookup", "Project", "Hail", "Mary")
	require.NoError(t, err)

	assert.Contains(t, out, "FINAL BOOK REVIEW SUMMARY")
	assert.Contains(t, out, "Source: r/books+literature | Book: Project Hail Mary")
	assert.Contains(t, out, "Simulated summary of 2 posts.")
	assert.Contains(t, out, "Posts analyzed: 2 | Comments analyzed: 4")

	records, err := storage.Load(history)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "summary", records[0].Outcome)
	assert.Equal(t, "mock", records[0].Provider)
}

func TestLookup_FlagOverrides(t *testing.T) {
	mockEnv(t)

	out, err := runCommand(t, "lookup", "--forums", "r/scifi", "--post-limit", "1", "--comment-limit", "1", "Dune")
	require.NoError(t, err)

	assert.Contains(t, out, "Source: r/scifi | Book: Dune")
	assert.Contains(t, out, "Posts analyzed: 1 | Comments analyzed: 1")
}

func TestLookup_InvalidLimit(t *testing.T) {
	mockEnv(t)

	_, err := runCommand(t, "lookup", "--post-limit", "0", "Dune")
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)
}

func TestLookup_RequiresTitle(t *testing.T) {
	mockEnv(t)

	_, err := runCommand(t, "lookup")
	assert.Error(t, err)
}

func TestLookup_ConfigError(t *testing.T) {
	mockEnv(t)
	t.Setenv("COLLECTOR_MODE", "scrape")

	_, err := runCommand(t, "lookup", "Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COLLECTOR_MODE")
}

func TestPrintOutcome_Failures(t *testing.T) {
	var buf bytes.Buffer
	err := printOutcome(&buf, review.Outcome{Kind: review.OutcomeNoData})
	assert.ErrorIs(t, err, ErrNoSummary)
	assert.Contains(t, buf.String(), "Could not find enough data to summarize.")

	buf.Reset()
	cause := errors.New("status 503")
	err = printOutcome(&buf, review.Outcome{Kind: review.OutcomeCollectionFailed, Err: cause})
	assert.ErrorIs(t, err, ErrNoSummary)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, buf.String(), "status 503")
}

func TestSplitForums(t *testing.T) {
	assert.Equal(t, []string{"books", "scifi"}, splitForums(" r/books + scifi +"))
	assert.Empty(t, splitForums(""))
}
