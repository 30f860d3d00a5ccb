package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
)

func TestNew_Providers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantType any
	}{
		{"groq", Config{Provider: "groq", APIKey: "gsk_test"}, &OpenAIProvider{}},
		{"openai", Config{Provider: "openai", APIKey: "sk-test"}, &OpenAIProvider{}},
		{"anthropic", Config{Provider: "anthropic", APIKey: "sk-ant-test"}, &AnthropicProvider{}},
		{"mock", Config{Provider: "mock"}, &MockSummarizer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(context.Background(), tt.cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, s)
		})
	}
}

func TestNew_MissingKeyIsClientInitError(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "groq"})
	require.Error(t, err)

	var initErr *domain.ClientInitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "summarizer groq", initErr.Client)
	assert.Contains(t, err.Error(), "api_key is required for groq")
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "llamafile"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown SUMMARIZER_PROVIDER")
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Provider: "groq"}.withDefaults()
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, groqBaseURL, cfg.BaseURL)
	assert.Equal(t, 1024, cfg.MaxTokens)

	cfg = Config{Provider: "openai", Model: "gpt-4.1", MaxTokens: 300}.withDefaults()
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, 300, cfg.MaxTokens)
}

func TestModelFor(t *testing.T) {
	assert.Equal(t, "llama-3.1-8b-instant", ModelFor(Config{Provider: "groq"}))
	assert.Equal(t, "custom", ModelFor(Config{Provider: "groq", Model: "custom"}))
}

func TestMockSummarizer_ErrorIsDistinguishable(t *testing.T) {
	m := NewMockSummarizer()
	quota := errors.New("rate_limit_exceeded: quota reached")
	m.SetError(quota)

	_, err := m.Summarize(context.Background(), SystemPrompt, "some text")
	require.Error(t, err)

	var sumErr *SummarizationError
	require.ErrorAs(t, err, &sumErr)
	assert.Equal(t, "mock", sumErr.Provider)
	assert.ErrorIs(t, err, quota)
	assert.Equal(t, 1, m.CallCount())
}

func TestMockSummarizer_EmptyInput(t *testing.T) {
	m := NewMockSummarizer()
	_, err := m.Summarize(context.Background(), SystemPrompt, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMockSummarizer_Response(t *testing.T) {
	m := NewMockSummarizer()
	out, err := m.Summarize(context.Background(), SystemPrompt, "\n\n--- POST 1: A ---\nx\n\n--- POST 2: B ---\ny")
	require.NoError(t, err)
	assert.Contains(t, out, "2 posts")

	m.SetResponse("fixed")
	out, err = m.Summarize(context.Background(), SystemPrompt, "text")
	require.NoError(t, err)
	assert.Equal(t, "fixed", out)
	assert.Equal(t, "text", m.LastText())
}

func TestProviders_RejectEmptyInputWithoutCalling(t *testing.T) {
	p, err := NewOpenAIProvider("groq", Config{APIKey: "k", Model: "m", MaxTokens: 10, BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	_, err = p.Summarize(context.Background(), SystemPrompt, "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	a, err := NewAnthropicProvider(Config{APIKey: "k", Model: "m", MaxTokens: 10, BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	_, err = a.Summarize(context.Background(), SystemPrompt, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
