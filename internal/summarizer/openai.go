package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider talks to OpenAI or any OpenAI-compatible endpoint (Groq).
type OpenAIProvider struct {
	client      *openai.Client
	name        string
	model       string
	maxTokens   int
	temperature float64
}

// NewOpenAIProvider builds a chat-completions client. name is used in errors
// and logs only.
func NewOpenAIProvider(name string, cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for %s", name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required for %s", name)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openai.NewClient(opts...)

	return &OpenAIProvider{
		client:      &client,
		name:        name,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Summarize implements Summarizer.
func (p *OpenAIProvider) Summarize(ctx context.Context, systemPrompt, userText string) (string, error) {
	if userText == "" {
		return "", wrap(p.name, ErrEmptyInput)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
		Temperature: openai.Float(p.temperature),
		MaxTokens:   openai.Int(int64(p.maxTokens)),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrap(p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", wrap(p.name, errors.New("response has no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}
