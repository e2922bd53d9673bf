package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
)

// AnthropicCompleter uses the Anthropic Messages API.
type AnthropicCompleter struct {
	client anthropic.Client
	cfg    Config
	logger zerolog.Logger
}

var _ Completer = (*AnthropicCompleter)(nil)

// NewAnthropicCompleter builds the Anthropic completer. SDK retries are
// disabled; a failed call is terminal for the request.
func NewAnthropicCompleter(cfg Config) (*AnthropicCompleter, error) {
	cfg, err := cfg.withDefaults(ProviderAnthropic)
	if err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicCompleter{
		client: anthropic.NewClient(opts...),
		cfg:    cfg,
		logger: cfg.Logger.With().Str("component", "anthropic_completer").Logger(),
	}, nil
}

// Complete sends prompt as a single user message and joins the text blocks.
func (a *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c := startCall(ctx, a.cfg, a.logger, prompt)

	msg, err := a.client.Messages.New(c.ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.cfg.Model),
		MaxTokens:   int64(a.cfg.MaxTokens),
		Temperature: anthropic.Float(float64(a.cfg.temperature())),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return c.finish("", err)
	}

	var builder strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			builder.WriteString(text.Text)
		}
	}

	return c.finish(builder.String(), nil)
}

// Provider returns the configured provider name.
func (a *AnthropicCompleter) Provider() string { return a.cfg.Provider }

// Model returns the configured model identifier.
func (a *AnthropicCompleter) Model() string { return a.cfg.Model }
