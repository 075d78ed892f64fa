package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Telegram
	BotToken string

	// Ledger store
	StorePath string

	// Spreadsheet export
	ExportDir string

	// Reminder
	ReminderInterval time.Duration

	// Keepalive HTTP listener
	KeepalivePort string
}

func Load() *Config {
	return &Config{
		BotToken:         getEnv("TELEGRAM_BOT_TOKEN", ""),
		StorePath:        getEnv("STORE_PATH", "./data/db.json"),
		ExportDir:        getEnv("EXPORT_DIR", "./data/exports"),
		ReminderInterval: getEnvDuration("REMINDER_INTERVAL", 24*time.Hour),
		KeepalivePort:    getEnv("KEEPALIVE_PORT", "8080"),
	}
}

// Validate checks the configuration and returns all problems as one error.
// A missing bot token is the only fatal startup condition the bot has.
func (c *Config) Validate() error {
	var errors []string

	if c.BotToken == "" {
		errors = append(errors, "TELEGRAM_BOT_TOKEN is required")
	}

	if c.StorePath == "" {
		errors = append(errors, "store path cannot be empty")
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	if c.ReminderInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid reminder interval %v: must be at least 1 second", c.ReminderInterval))
	}

	if port, err := strconv.Atoi(c.KeepalivePort); err != nil {
		errors = append(errors, fmt.Sprintf("invalid keepalive port '%s': must be a number", c.KeepalivePort))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid keepalive port %d: must be between 1 and 65535", port))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
