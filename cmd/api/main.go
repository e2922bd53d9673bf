package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/autota-go-api/internal/config"
	"github.com/noah-isme/autota-go-api/internal/database"
	"github.com/noah-isme/autota-go-api/internal/handler"
	"github.com/noah-isme/autota-go-api/internal/middleware"
	"github.com/noah-isme/autota-go-api/internal/router"
	"github.com/noah-isme/autota-go-api/internal/service"
	"github.com/noah-isme/autota-go-api/pkg/ai"
	"github.com/noah-isme/autota-go-api/pkg/pdf"
)

// pdfTextLimit caps the characters returned for one assignment document.
const pdfTextLimit = 50000

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", cfg.AppName).Logger()

	completer, err := ai.NewCompleter(context.Background(), ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIAPIKey,
		Model:       cfg.AIModel,
		BaseURL:     cfg.AIBaseURL,
		Temperature: &cfg.AITemperature,
		MaxTokens:   cfg.AIMaxTokens,
		Timeout:     cfg.AITimeout,
		Logger:      logger,
	})
	if err != nil {
		// the server still starts so health, languages and pdf extraction keep working
		logger.Warn().Err(err).Str("provider", cfg.AIProvider).Msg("completion backend not configured")
		completer = nil
	} else {
		logger.Info().Str("provider", completer.Provider()).Str("model", completer.Model()).Msg("completion backend ready")
	}

	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(context.Background(), cfg.RedisURL, 3*time.Second)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		limiterStorage = middleware.NewRedisStorage(redisClient, "")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	hintService := service.NewHintService(completer, validate, logger)
	detectionService := service.NewDetectionService(completer, validate, logger)
	documentService := service.NewDocumentService(pdf.NewTextExtractor(pdfTextLimit), cfg.PDFMaxSizeMB, logger)
	languageService := service.NewLanguageService()

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		// one extra megabyte leaves room for multipart framing so oversized
		// uploads reach the handler and get a 413 with a JSON body
		BodyLimit: (cfg.PDFMaxSizeMB + 1) * 1024 * 1024,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSAllowOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		HintHandler:      handler.NewHintHandler(hintService, logger),
		DetectionHandler: handler.NewDetectionHandler(detectionService, logger),
		DocumentHandler:  handler.NewDocumentHandler(documentService, logger),
		LanguageHandler:  handler.NewLanguageHandler(languageService),
		LimiterStorage:   limiterStorage,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
