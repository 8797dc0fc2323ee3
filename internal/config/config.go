package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	API     APIConfig
	Auth    AuthConfig
	Store   StoreConfig
	Discord DiscordConfig
	Log     LogConfig
}

// APIConfig holds settings for the remote VGC stats API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the signed-in user's credentials
type AuthConfig struct {
	IDToken string // Optional: anonymous when empty
}

// StoreConfig selects where client-side state lives.
// RedisURL takes precedence over Path; with neither set state is in-memory.
type StoreConfig struct {
	RedisURL string
	Path     string
}

// DiscordConfig holds the optional webhook used to share results
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string // zerolog level name; defaults to warn
}

// Enabled reports whether a webhook is configured
func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("VGC_API_URL", "http://localhost:5000"),
			Timeout: getEnvAsDurationOrDefault("VGC_API_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			IDToken: os.Getenv("VGC_ID_TOKEN"),
		},
		Store: StoreConfig{
			RedisURL: os.Getenv("REDIS_URL"),
			Path:     os.Getenv("VGC_STORE_PATH"),
		},
		Discord: DiscordConfig{
			WebhookID:    os.Getenv("DISCORD_WEBHOOK_ID"),
			WebhookToken: os.Getenv("DISCORD_WEBHOOK_TOKEN"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "warn"),
		},
	}

	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("VGC_API_TIMEOUT must be positive")
	}
	if (cfg.Discord.WebhookID == "") != (cfg.Discord.WebhookToken == "") {
		return nil, fmt.Errorf("DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("45s") or plain seconds ("45")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
