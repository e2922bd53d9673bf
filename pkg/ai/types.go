package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrConfiguration indicates the gateway cannot be built from the supplied configuration.
	ErrConfiguration = errors.New("ai configuration error")
	// ErrEmptyCompletion indicates the backend answered without any text.
	ErrEmptyCompletion = errors.New("empty completion from model backend")
	// ErrCompletionTimeout indicates the backend did not answer within the configured bound.
	ErrCompletionTimeout = errors.New("model backend timed out")
)

// Supported provider identifiers.
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 500
	defaultTimeout     = 30 * time.Second
)

var defaultModels = map[string]string{
	ProviderGroq:      "llama-3.3-70b-versatile",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderGemini:    "gemini-2.5-flash",
}

// Config holds the generation parameters fixed at process start.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	// Temperature is sent as is, including 0; nil selects the default 0.3.
	Temperature *float32
	MaxTokens   int
	Timeout     time.Duration
	Logger      zerolog.Logger
}

// Completer executes a single prompt against a text-completion backend and
// returns the raw completion text. Implementations never interpret the text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// NewCompleter builds the completer for cfg.Provider.
func NewCompleter(ctx context.Context, cfg Config) (Completer, error) {
	var (
		completer Completer
		err       error
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGroq:
		cfg.Provider = ProviderGroq
		completer, err = NewOpenAICompleter(cfg)
	case ProviderOpenAI:
		cfg.Provider = ProviderOpenAI
		completer, err = NewOpenAICompleter(cfg)
	case ProviderAnthropic:
		completer, err = NewAnthropicCompleter(cfg)
	case ProviderGemini:
		completer, err = NewGeminiCompleter(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", ErrConfiguration, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return completer, nil
}

// withDefaults validates credentials and fills the generation parameters.
func (c Config) withDefaults(provider string) (Config, error) {
	c.Provider = provider
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return Config{}, fmt.Errorf("%w: %s api key is required", ErrConfiguration, provider)
	}
	if c.Model == "" {
		c.Model = defaultModels[provider]
	}
	temperature := float32(defaultTemperature)
	if c.Temperature != nil && *c.Temperature >= 0 {
		temperature = *c.Temperature
	}
	c.Temperature = &temperature
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c, nil
}

func (c Config) temperature() float32 {
	if c.Temperature == nil {
		return defaultTemperature
	}
	return *c.Temperature
}
