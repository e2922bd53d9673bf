package service

import (
	"errors"

	"github.com/noah-isme/autota-go-api/internal/normalizer"
	"github.com/noah-isme/autota-go-api/internal/observability"
	"github.com/noah-isme/autota-go-api/pkg/ai"
)

// ErrCompleterUnavailable indicates no completion backend is configured.
var ErrCompleterUnavailable = errors.New("completion backend unavailable")

const (
	flowHint      = "hint"
	flowDetection = "detection"
)

func recordOutcome(flow string, err error) {
	observability.PipelineResults().WithLabelValues(flow, outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrHintInputMissing), errors.Is(err, ErrDetectionInputMissing):
		return "invalid"
	case errors.Is(err, normalizer.ErrMalformedModelOutput):
		return "malformed"
	case errors.Is(err, ai.ErrEmptyCompletion):
		return "empty"
	case errors.Is(err, ai.ErrCompletionTimeout):
		return "timeout"
	default:
		return "backend_error"
	}
}
