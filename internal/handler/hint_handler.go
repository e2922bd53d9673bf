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
	msgHintMissingFields = "Missing required fields: code and error"
	msgHintFailed        = "Failed to generate hints. Please check your API key and try again."
	msgHintMalformed     = "Failed to generate hints. The model returned an unreadable response, please try again."
)

// HintHandler exposes the debugging hint endpoint.
type HintHandler struct {
	service service.HintService
	logger  zerolog.Logger
}

// NewHintHandler constructs the handler.
func NewHintHandler(service service.HintService, logger zerolog.Logger) *HintHandler {
	return &HintHandler{
		service: service,
		logger:  logger.With().Str("component", "hint_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *HintHandler) Register(router fiber.Router, limiter ...fiber.Handler) {
	handlers := append(append([]fiber.Handler{}, limiter...), h.create)
	router.Post("/hint", handlers...)
}

func (h *HintHandler) create(c *fiber.Ctx) error {
	var payload dto.HintRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	response, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		if errors.Is(err, service.ErrHintInputMissing) {
			return utils.SendError(c, fiber.StatusBadRequest, msgHintMissingFields)
		}
		return sendPipelineError(c, h.logger, err, msgHintMalformed, msgHintFailed)
	}

	return utils.SendJSON(c, response)
}
