package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	completionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autota",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of model completion requests",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	}, []string{"provider", "model"})

	completionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autota",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of failed model completion requests",
	}, []string{"provider", "model", "reason"})
)

var tracer = otel.Tracer("github.com/noah-isme/autota-go-api/pkg/ai")

// call is the per-request bookkeeping shared by every backend: a bounded
// deadline, a span, latency and failure metrics.
type call struct {
	ctx      context.Context
	span     trace.Span
	cancel   context.CancelFunc
	cfg      Config
	logger   zerolog.Logger
	started  time.Time
	promptSz int
}

func startCall(parent context.Context, cfg Config, logger zerolog.Logger, prompt string) *call {
	ctx, span := tracer.Start(parent, cfg.Provider+".complete", trace.WithAttributes(
		attribute.String("ai.provider", cfg.Provider),
		attribute.String("ai.model", cfg.Model),
		attribute.Int("ai.max_tokens", cfg.MaxTokens),
		attribute.Int("ai.prompt_bytes", len(prompt)),
	))
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)

	return &call{
		ctx:      ctx,
		span:     span,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		started:  time.Now(),
		promptSz: len(prompt),
	}
}

// finish records the outcome. Backend errors are wrapped, never replaced, so
// the caller sees the backend's own message; a blown deadline becomes
// ErrCompletionTimeout and blank text becomes ErrEmptyCompletion.
func (c *call) finish(text string, err error) (string, error) {
	defer c.span.End()
	defer c.cancel()

	elapsed := time.Since(c.started)
	completionDuration.WithLabelValues(c.cfg.Provider, c.cfg.Model).Observe(elapsed.Seconds())

	reason := ""
	switch {
	case err != nil && errors.Is(c.ctx.Err(), context.DeadlineExceeded):
		reason = "timeout"
		err = fmt.Errorf("%w after %s: %v", ErrCompletionTimeout, c.cfg.Timeout, err)
	case err != nil:
		reason = "backend"
		err = fmt.Errorf("%s complete: %w", c.cfg.Provider, err)
	case strings.TrimSpace(text) == "":
		reason = "empty"
		err = ErrEmptyCompletion
	}

	if err != nil {
		completionFailures.WithLabelValues(c.cfg.Provider, c.cfg.Model, reason).Inc()
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, reason)
		c.logger.Warn().Err(err).
			Str("provider", c.cfg.Provider).
			Str("model", c.cfg.Model).
			Dur("elapsed", elapsed).
			Msg("completion failed")
		return "", err
	}

	c.span.SetAttributes(attribute.Int("ai.completion_bytes", len(text)))
	c.span.SetStatus(codes.Ok, "completed")
	c.logger.Debug().
		Str("provider", c.cfg.Provider).
		Str("model", c.cfg.Model).
		Int("prompt_bytes", c.promptSz).
		Int("completion_bytes", len(text)).
		Dur("elapsed", elapsed).
		Msg("completion succeeded")

	return text, nil
}
