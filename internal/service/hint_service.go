package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/normalizer"
	"github.com/noah-isme/autota-go-api/internal/prompt"
	"github.com/noah-isme/autota-go-api/pkg/ai"
)

// ErrHintInputMissing indicates code or the observed error is blank.
var ErrHintInputMissing = errors.New("code and error are required")

// HintService produces debugging hints for student code.
type HintService interface {
	Generate(ctx context.Context, payload dto.HintRequest) (dto.HintResponse, error)
}

type hintService struct {
	completer ai.Completer
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewHintService constructs the hint pipeline.
func NewHintService(completer ai.Completer, validate *validator.Validate, logger zerolog.Logger) HintService {
	return &hintService{
		completer: completer,
		validator: validate,
		logger:    logger.With().Str("component", "hint_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/autota-go-api/internal/service/hint"),
	}
}

// Generate validates the request, builds the hint prompt with numbered lines,
// runs one completion and normalizes it. Nothing is synthesized on failure.
func (s *hintService) Generate(ctx context.Context, payload dto.HintRequest) (result dto.HintResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "hint.generate")
	defer span.End()
	defer func() {
		recordOutcome(flowHint, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcomeLabel(err))
		}
	}()

	trimmed := dto.HintRequest{
		Assignment: strings.TrimSpace(payload.Assignment),
		Code:       strings.TrimSpace(payload.Code),
		Error:      strings.TrimSpace(payload.Error),
	}
	if err := s.validator.Struct(trimmed); err != nil {
		return dto.HintResponse{}, ErrHintInputMissing
	}

	if s.completer == nil {
		return dto.HintResponse{}, ErrCompleterUnavailable
	}

	text := prompt.Hint(prompt.HintInput{
		Assignment:    trimmed.Assignment,
		Code:          payload.Code,
		ObservedError: trimmed.Error,
	})
	_, lines := prompt.NumberLines(payload.Code)
	span.SetAttributes(
		attribute.Int("hint.code_lines", lines),
		attribute.Bool("hint.has_assignment", trimmed.Assignment != ""),
	)

	raw, err := s.completer.Complete(ctx, text)
	if err != nil {
		return dto.HintResponse{}, err
	}

	hint, err := normalizer.Hint(raw)
	if err != nil {
		s.logger.Warn().Err(err).Int("completion_bytes", len(raw)).Msg("hint completion could not be normalized")
		return dto.HintResponse{}, err
	}

	return dto.HintResponse{
		Broke:   hint.Broke,
		Concept: hint.Concept,
		Nudge:   hint.Nudge,
	}, nil
}
