package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GoogleProvider summarizes with Gemini.
type GoogleProvider struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
}

func NewGoogleProvider(ctx context.Context, cfg Config) (*GoogleProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for google")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required for google")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &GoogleProvider{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Close closes the underlying client.
func (p *GoogleProvider) Close() error {
	return p.client.Close()
}

// Summarize implements Summarizer. A GenerativeModel carries the system
// instruction as mutable state, so one is built per call.
func (p *GoogleProvider) Summarize(ctx context.Context, systemPrompt, userText string) (string, error) {
	if userText == "" {
		return "", wrap("google", ErrEmptyInput)
	}

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(float32(p.temperature))
	model.SetMaxOutputTokens(int32(p.maxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		return "", wrap("google", err)
	}

	var text string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
		break
	}
	if text == "" {
		return "", wrap("google", errors.New("response has no text content"))
	}
	return text, nil
}
