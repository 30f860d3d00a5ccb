package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockSummarizer returns canned summaries, for local runs and tests.
type MockSummarizer struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	lastText string
}

func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// SetResponse fixes the summary text. Without it a summary is derived from the input.
func (m *MockSummarizer) SetResponse(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = s
}

// SetError makes every call fail with err wrapped in a SummarizationError.
func (m *MockSummarizer) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// CallCount returns the number of Summarize calls.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastText returns the user text of the last call.
func (m *MockSummarizer) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}

// Summarize implements Summarizer.
func (m *MockSummarizer) Summarize(_ context.Context, _ string, userText string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastText = userText

	if m.err != nil {
		return "", wrap("mock", m.err)
	}
	if userText == "" {
		return "", wrap("mock", ErrEmptyInput)
	}
	if m.response != "" {
		return m.response, nil
	}
	return fmt.Sprintf("Simulated summary of %d posts.\n\nReaders mostly agree on the themes raised above.",
		strings.Count(userText, "--- POST ")), nil
}
