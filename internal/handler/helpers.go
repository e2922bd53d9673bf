package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/autota-go-api/internal/middleware"
	"github.com/noah-isme/autota-go-api/internal/normalizer"
	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/internal/utils"
)

const msgInvalidBody = "invalid request body"

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// sendPipelineError converts a failure of the build -> complete -> normalize
// pipeline into a 500. Unparseable model output gets a generic message; backend
// failures carry the backend's own message. The fallback is used when there is
// no message or no backend configured at all.
func sendPipelineError(c *fiber.Ctx, logger zerolog.Logger, err error, malformed, fallback string) error {
	log := requestLogger(logger, c)

	if errors.Is(err, normalizer.ErrMalformedModelOutput) {
		log.Warn().Err(err).Msg("model output could not be normalized")
		return utils.SendError(c, fiber.StatusInternalServerError, malformed)
	}

	log.Error().Err(err).Msg("completion pipeline failed")
	message := err.Error()
	if message == "" || errors.Is(err, service.ErrCompleterUnavailable) {
		message = fallback
	}
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
