package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/autota-go-api/internal/config"
	"github.com/noah-isme/autota-go-api/internal/handler"
	"github.com/noah-isme/autota-go-api/internal/middleware"
	"github.com/noah-isme/autota-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	HintHandler      *handler.HintHandler
	DetectionHandler *handler.DetectionHandler
	DocumentHandler  *handler.DocumentHandler
	LanguageHandler  *handler.LanguageHandler
	// LimiterStorage backs the completion rate limiter. Nil keeps counters in memory.
	LimiterStorage fiber.Storage
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Model-backed endpoints share one budget per client.
	completionLimit := middleware.RateLimit("completion", cfg.RateLimitMax, cfg.RateLimitWindow, deps.LimiterStorage)

	if deps.HintHandler != nil {
		deps.HintHandler.Register(api, completionLimit)
	}
	if deps.DetectionHandler != nil {
		deps.DetectionHandler.Register(api, completionLimit)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.Register(api)
	}
	if deps.LanguageHandler != nil {
		deps.LanguageHandler.Register(api.Group("/languages"))
	}
}
