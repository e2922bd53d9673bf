package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/internal/utils"
)

// LanguageHandler exposes the supported language set.
type LanguageHandler struct {
	service service.LanguageService
}

// NewLanguageHandler constructs the handler.
func NewLanguageHandler(service service.LanguageService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

// Register wires the handler endpoints into the router group.
func (h *LanguageHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("/detect", h.detect)
}

func (h *LanguageHandler) list(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.service.List())
}

func (h *LanguageHandler) detect(c *fiber.Ctx) error {
	var payload dto.DetectLanguageRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if strings.TrimSpace(payload.Filename) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "Missing required field: filename")
	}

	return utils.SendJSON(c, h.service.Detect(payload.Filename))
}
