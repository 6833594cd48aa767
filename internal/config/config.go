package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds everything read from the environment at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// WebhookURL is the notification sink. Optional: when empty the
	// service runs with notifications disabled.
	WebhookURL string

	// RobloxCookie is the raw .ROBLOSECURITY session value used for the
	// private connections call. Optional: when empty every lookup
	// returns an empty connections list.
	RobloxCookie string

	// ConnectionsTimeout is the fixed timeout on the private connections
	// call. The public users API is not bounded here.
	ConnectionsTimeout time.Duration
}

// Load reads configuration from .env (if present) and the environment.
// Missing optional values degrade with a warning instead of failing startup.
func Load(logger *zap.Logger) Config {
	// .env 파일은 없어도 무방
	_ = godotenv.Load()

	cfg := Config{
		Port:               os.Getenv("PORT"),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		RobloxCookie:       os.Getenv("ROBLOSECURITY"),
		ConnectionsTimeout: 5 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if ms := os.Getenv("CONNECTIONS_TIMEOUT_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			cfg.ConnectionsTimeout = time.Duration(v) * time.Millisecond
		} else {
			logger.Warn("invalid CONNECTIONS_TIMEOUT_MS, using default", zap.String("value", ms))
		}
	}

	if cfg.WebhookURL == "" {
		logger.Warn("WEBHOOK_URL is not set. Notifications are disabled.")
	}
	if cfg.RobloxCookie == "" {
		logger.Warn("ROBLOSECURITY is not set. Connections lookups are disabled.")
	}

	return cfg
}
