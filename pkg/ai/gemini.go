package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// GeminiCompleter uses the Gemini API through the official genai client.
type GeminiCompleter struct {
	client *genai.Client
	cfg    Config
	logger zerolog.Logger
}

var _ Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter builds the Gemini completer.
func NewGeminiCompleter(ctx context.Context, cfg Config) (*GeminiCompleter, error) {
	cfg, err := cfg.withDefaults(ProviderGemini)
	if err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini client: %v", ErrConfiguration, err)
	}

	return &GeminiCompleter{
		client: client,
		cfg:    cfg,
		logger: cfg.Logger.With().Str("component", "gemini_completer").Logger(),
	}, nil
}

// Complete sends prompt as a single user turn and joins the text parts of the
// first candidate.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c := startCall(ctx, g.cfg, g.logger, prompt)

	resp, err := g.client.Models.GenerateContent(c.ctx, g.cfg.Model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(g.cfg.temperature()),
			MaxOutputTokens: int32(g.cfg.MaxTokens),
		},
	)
	if err != nil {
		return c.finish("", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return c.finish("", nil)
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			builder.WriteString(part.Text)
		}
	}

	return c.finish(builder.String(), nil)
}

// Provider returns the configured provider name.
func (g *GeminiCompleter) Provider() string { return g.cfg.Provider }

// Model returns the configured model identifier.
func (g *GeminiCompleter) Model() string { return g.cfg.Model }
