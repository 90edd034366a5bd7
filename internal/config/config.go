// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// TelegramToken is the bot token for payment notifications.
	// Empty disables Telegram entirely (a no-op notifier is wired instead).
	TelegramToken string

	// TelegramChatID is the chat notifications are delivered to.
	// Required when TelegramToken is set.
	TelegramChatID int64

	// CollectAPIKey authenticates fuel price lookups. Empty means the
	// client starts from the fallback price and never fetches.
	CollectAPIKey string

	// FuelPriceTTL is how long a fetched petrol price stays fresh.
	// Defaults to 1h. Set FUEL_PRICE_TTL to a Go duration to override.
	FuelPriceTTL time.Duration

	// MaxBodyBytes caps the size of request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present, so
// local development does not need exported variables.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
		CollectAPIKey: os.Getenv("COLLECTAPI_KEY"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if cfg.TelegramToken != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TELEGRAM_CHAT_ID must be a valid chat id when TELEGRAM_APITOKEN is set: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	ttl, err := time.ParseDuration(getEnv("FUEL_PRICE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("FUEL_PRICE_TTL is not a valid duration: %w", err)
	}
	cfg.FuelPriceTTL = ttl

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES is not a valid size: %w", err)
	}
	cfg.MaxBodyBytes = maxBody

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
