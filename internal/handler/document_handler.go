package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/internal/utils"
)

// DocumentHandler exposes assignment document extraction.
type DocumentHandler struct {
	service service.DocumentService
	logger  zerolog.Logger
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(service service.DocumentService, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger.With().Str("component", "document_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *DocumentHandler) Register(router fiber.Router) {
	router.Post("/extract-pdf", h.extractPDF)
}

func (h *DocumentHandler) extractPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, service.ErrPDFRequired.Error())
	}

	result, err := h.service.ExtractPDF(c.UserContext(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPDFRequired):
			return utils.SendError(c, fiber.StatusBadRequest, service.ErrPDFRequired.Error())
		case errors.Is(err, service.ErrPDFTooLarge):
			return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("pdf extraction failed")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendJSON(c, result)
}
