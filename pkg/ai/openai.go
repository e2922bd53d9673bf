package ai

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAICompleter talks to any OpenAI-compatible chat completion API. Groq is
// served through the same client with its own base URL.
type OpenAICompleter struct {
	client *openai.Client
	cfg    Config
	logger zerolog.Logger
}

var _ Completer = (*OpenAICompleter)(nil)

// NewOpenAICompleter builds a completer for the groq or openai provider.
func NewOpenAICompleter(cfg Config) (*OpenAICompleter, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderGroq
	}

	cfg, err := cfg.withDefaults(provider)
	if err != nil {
		return nil, err
	}

	config := openai.DefaultConfig(cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	case provider == ProviderGroq:
		config.BaseURL = GroqBaseURL
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(config),
		cfg:    cfg,
		logger: cfg.Logger.With().Str("component", "openai_completer").Logger(),
	}, nil
}

// Complete sends prompt as a single user message.
func (o *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c := startCall(ctx, o.cfg, o.logger, prompt)

	// the request field is omitempty, so an explicit zero must be sent as the
	// smallest positive value to survive encoding
	temperature := o.cfg.temperature()
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := o.client.CreateChatCompletion(c.ctx, openai.ChatCompletionRequest{
		Model:       o.cfg.Model,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return c.finish("", err)
	}

	if len(resp.Choices) == 0 {
		return c.finish("", nil)
	}

	return c.finish(resp.Choices[0].Message.Content, nil)
}

// Provider returns the configured provider name.
func (o *OpenAICompleter) Provider() string { return o.cfg.Provider }

// Model returns the configured model identifier.
func (o *OpenAICompleter) Model() string { return o.cfg.Model }
