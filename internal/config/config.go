// Package config loads application configuration from the environment,
// after merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	CollectorMode      string `env:"COLLECTOR_MODE" envDefault:"public"`
	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	RedditUsername     string `env:"REDDIT_USERNAME"`
	RedditPassword     string `env:"REDDIT_PASSWORD"`
	RedditUserAgent    string `env:"REDDIT_USER_AGENT"`
	RedditBaseURL      string `env:"REDDIT_BASE_URL"`
	RedditHTTPCache    bool   `env:"REDDIT_HTTP_CACHE" envDefault:"false"`

	Forums       []string `env:"FORUMS" envSeparator:"+" envDefault:"books+literature+suggestmeabook"`
	ForumsFile   string   `env:"FORUMS_FILE"`
	PostLimit    int      `env:"POST_LIMIT" envDefault:"2"`
	CommentLimit int      `env:"COMMENT_LIMIT" envDefault:"2"`

	SummarizerProvider    string        `env:"SUMMARIZER_PROVIDER" envDefault:"groq"`
	SummarizerModel       string        `env:"SUMMARIZER_MODEL"`
	SummarizerBaseURL     string        `env:"SUMMARIZER_BASE_URL"`
	SummarizerTemperature float64       `env:"SUMMARIZER_TEMPERATURE" envDefault:"0.2"`
	SummarizerMaxTokens   int           `env:"SUMMARIZER_MAX_TOKENS" envDefault:"1024"`
	SummarizerTimeout     time.Duration `env:"SUMMARIZER_TIMEOUT" envDefault:"60s"`
	GroqAPIKey            string        `env:"GROQ_API_KEY"`
	OpenAIAPIKey          string        `env:"OPENAI_API_KEY"`
	AnthropicAPIKey       string        `env:"ANTHROPIC_API_KEY"`
	GoogleAPIKey          string        `env:"GOOGLE_API_KEY"`

	Port        string `env:"PORT" envDefault:"8080"`
	HistoryFile string `env:"HISTORY_FILE" envDefault:"data/history.json"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load merges .env (when present, without overriding the real environment)
// and returns a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Forums = cleanForums(cfg.Forums)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	switch c.CollectorMode {
	case "api", "public", "mock":
	default:
		errs = append(errs, fmt.Errorf("COLLECTOR_MODE must be api, public or mock, got %q", c.CollectorMode))
	}
	if c.PostLimit <= 0 {
		errs = append(errs, fmt.Errorf("POST_LIMIT must be positive, got %d", c.PostLimit))
	}
	if c.CommentLimit <= 0 {
		errs = append(errs, fmt.Errorf("COMMENT_LIMIT must be positive, got %d", c.CommentLimit))
	}
	if len(c.Forums) == 0 && c.ForumsFile == "" {
		errs = append(errs, errors.New("FORUMS or FORUMS_FILE must name at least one forum"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// SummarizerAPIKey returns the key matching the selected provider.
func (c *Config) SummarizerAPIKey() string {
	switch c.SummarizerProvider {
	case "groq":
		return c.GroqAPIKey
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "google":
		return c.GoogleAPIKey
	default:
		return ""
	}
}

func cleanForums(in []string) []string {
	var out []string
	for _, f := range in {
		f = strings.TrimPrefix(strings.TrimSpace(f), "r/")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
