// Package summarizer wraps the hosted LLM APIs that turn collected review
// text into a short summary.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SystemPrompt is sent with every summarization request.
const SystemPrompt = "You are an expert book reviewer. Analyze the following collection of Reddit posts and comments " +
	"about a single book. Generate a concise, objective summary (2 paragraphs maximum) that highlights " +
	"the main themes, the most common praise (Pros), and the most frequent criticisms (Cons) mentioned by readers. " +
	"Do not include any introductory or concluding sentences outside of the main summary."

// ErrEmptyInput is wrapped in a SummarizationError when there is nothing to summarize.
var ErrEmptyInput = errors.New("no input text was provided for summarization")

// Summarizer produces a summary of userText following systemPrompt.
// Implementations make exactly one request per call.
type Summarizer interface {
	Summarize(ctx context.Context, systemPrompt, userText string) (string, error)
}

// SummarizationError carries the cause of a failed summarization call.
type SummarizationError struct {
	Provider string
	Err      error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("%s summarization failed: %v", e.Provider, e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// Config selects and configures a provider.
type Config struct {
	Provider    string // groq, openai, anthropic, google, mock
	Model       string
	APIKey      string
	BaseURL     string // Optional custom endpoint
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Default models per provider, used when Config.Model is empty.
var defaultModels = map[string]string{
	"groq":      "llama-3.1-8b-instant",
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-3-5-haiku-latest",
	"google":    "gemini-1.5-flash",
	"mock":      "mock",
}

const groqBaseURL = "https://api.groq.com/openai/v1"

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1024
	}
	if c.Provider == "groq" && c.BaseURL == "" {
		c.BaseURL = groqBaseURL
	}
	return c
}

func wrap(provider string, err error) error {
	return &SummarizationError{Provider: provider, Err: err}
}
