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
	"github.com/noah-isme/autota-go-api/internal/language"
	"github.com/noah-isme/autota-go-api/internal/normalizer"
	"github.com/noah-isme/autota-go-api/internal/prompt"
	"github.com/noah-isme/autota-go-api/pkg/ai"
)

// ErrDetectionInputMissing indicates code or language is blank.
var ErrDetectionInputMissing = errors.New("code and language are required")

// DetectionService predicts the error a program would produce when run.
type DetectionService interface {
	Detect(ctx context.Context, payload dto.DetectErrorRequest) (dto.DetectErrorResponse, error)
}

type detectionService struct {
	completer ai.Completer
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewDetectionService constructs the detection pipeline.
func NewDetectionService(completer ai.Completer, validate *validator.Validate, logger zerolog.Logger) DetectionService {
	return &detectionService{
		completer: completer,
		validator: validate,
		logger:    logger.With().Str("component", "detection_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/autota-go-api/internal/service/detection"),
	}
}

// Detect asks the model to act as the language's interpreter. The code is
// embedded verbatim; the language is normalized to the supported set.
func (s *detectionService) Detect(ctx context.Context, payload dto.DetectErrorRequest) (result dto.DetectErrorResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "detection.detect")
	defer span.End()
	defer func() {
		recordOutcome(flowDetection, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcomeLabel(err))
		}
	}()

	trimmed := dto.DetectErrorRequest{
		Code:     strings.TrimSpace(payload.Code),
		Language: strings.TrimSpace(payload.Language),
	}
	if err := s.validator.Struct(trimmed); err != nil {
		return dto.DetectErrorResponse{}, ErrDetectionInputMissing
	}

	if s.completer == nil {
		return dto.DetectErrorResponse{}, ErrCompleterUnavailable
	}

	lang := language.Normalize(trimmed.Language)
	span.SetAttributes(attribute.String("detection.language", lang))

	raw, err := s.completer.Complete(ctx, prompt.Detection(prompt.DetectionInput{
		Code:     payload.Code,
		Language: lang,
	}))
	if err != nil {
		return dto.DetectErrorResponse{}, err
	}

	detected, err := normalizer.Detection(raw)
	if err != nil {
		s.logger.Warn().Err(err).Int("completion_bytes", len(raw)).Msg("detection completion could not be normalized")
		return dto.DetectErrorResponse{}, err
	}

	if !normalizer.KnownErrorType(detected.ErrorType) {
		s.logger.Debug().Str("error_type", detected.ErrorType).Str("language", lang).Msg("model returned unknown error type")
	}

	span.SetAttributes(
		attribute.Bool("detection.has_error", detected.HasError),
		attribute.String("detection.error_type", detected.ErrorType),
	)

	return dto.DetectErrorResponse{
		HasError:     detected.HasError,
		ErrorMessage: detected.ErrorMessage,
		ErrorType:    detected.ErrorType,
	}, nil
}
