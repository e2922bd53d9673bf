package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	LogLevel         string
	AIProvider       string
	AIAPIKey         string
	AIModel          string
	AIBaseURL        string
	AITemperature    float32
	AIMaxTokens      int
	AITimeout        time.Duration
	RedisURL         string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	PDFMaxSizeMB     int
	CORSAllowOrigins string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// providerKeyEnv maps providers to the vendor environment variable used when
// AUTOTA_AI_API_KEY is not set.
var providerKeyEnv = map[string]string{
	"groq":      "groq_api_key",
	"openai":    "openai_api_key",
	"anthropic": "anthropic_api_key",
	"gemini":    "gemini_api_key",
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("AUTOTA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "AutoTA API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("ai.provider", "groq")
	v.SetDefault("ai.temperature", 0.3)
	v.SetDefault("ai.max_tokens", 500)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("rate_limit.max", 20)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("pdf.max_size_mb", 10)
	v.SetDefault("cors.allow_origins", "*")

	timeout, err := parseDuration(v.GetString("ai.timeout"), 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid ai timeout: %w", err)
	}

	window, err := parseDuration(v.GetString("rate_limit.window"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("ai.provider")))
	if _, ok := providerKeyEnv[provider]; !ok {
		return Config{}, fmt.Errorf("unsupported ai provider %q", provider)
	}

	apiKey := strings.TrimSpace(v.GetString("ai.api_key"))
	if apiKey == "" {
		// vendor variables are read without the AUTOTA prefix
		vendor := viper.New()
		vendor.AutomaticEnv()
		apiKey = strings.TrimSpace(vendor.GetString(providerKeyEnv[provider]))
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		LogLevel:         strings.ToLower(v.GetString("log.level")),
		AIProvider:       provider,
		AIAPIKey:         apiKey,
		AIModel:          strings.TrimSpace(v.GetString("ai.model")),
		AIBaseURL:        strings.TrimSpace(v.GetString("ai.base_url")),
		AITemperature:    float32(v.GetFloat64("ai.temperature")),
		AIMaxTokens:      v.GetInt("ai.max_tokens"),
		AITimeout:        timeout,
		RedisURL:         v.GetString("redis.url"),
		RateLimitMax:     v.GetInt("rate_limit.max"),
		RateLimitWindow:  window,
		PDFMaxSizeMB:     v.GetInt("pdf.max_size_mb"),
		CORSAllowOrigins: v.GetString("cors.allow_origins"),
	}

	if cfg.AIMaxTokens <= 0 {
		cfg.AIMaxTokens = 500
	}

	// 0 is a valid, fully deterministic setting; only negatives are rejected
	if cfg.AITemperature < 0 {
		cfg.AITemperature = 0.3
	}

	if cfg.PDFMaxSizeMB <= 0 {
		cfg.PDFMaxSizeMB = 10
	}

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}
