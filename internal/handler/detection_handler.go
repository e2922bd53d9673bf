package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/internal/utils"
)

const (
	msgDetectionMissingFields = "Missing required fields: code or language"
	msgDetectionFailed        = "Failed to detect errors"
	msgDetectionMalformed     = "Failed to detect errors. The model returned an unreadable response, please try again."
)

// DetectionHandler exposes the error detection endpoint.
type DetectionHandler struct {
	service service.DetectionService
	logger  zerolog.Logger
}

// NewDetectionHandler constructs the handler.
func NewDetectionHandler(service service.DetectionService, logger zerolog.Logger) *DetectionHandler {
	return &DetectionHandler{
		service: service,
		logger:  logger.With().Str("component", "detection_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *DetectionHandler) Register(router fiber.Router, limiter ...fiber.Handler) {
	handlers := append(append([]fiber.Handler{}, limiter...), h.detect)
	router.Post("/detect-error", handlers...)
}

func (h *DetectionHandler) detect(c *fiber.Ctx) error {
	var payload dto.DetectErrorRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	response, err := h.service.Detect(c.UserContext(), payload)
	if err != nil {
		if errors.Is(err, service.ErrDetectionInputMissing) {
			return utils.SendError(c, fiber.StatusBadRequest, msgDetectionMissingFields)
		}
		return sendPipelineError(c, h.logger, err, msgDetectionMalformed, msgDetectionFailed)
	}

	return utils.SendJSON(c, response)
}
