// Package config loads application settings from the environment and an
// optional seed-profile file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	LogLevel  string
	LogFormat string

	// Language is a cosmetic pass-through flag the fixture generator uses
	// to pick name pools. It carries no localization logic.
	Language string

	// ProfilePath optionally points at a seed-profile file; when empty
	// the default search paths apply.
	ProfilePath string
}

// Load loads configuration from environment variables and a .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "tenantdesk"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "console"),
		Language:    normalizeLanguage(getenv("APP_LANGUAGE", "en")),
		ProfilePath: strings.TrimSpace(getenv("SEED_PROFILE", "")),
	}
}

func normalizeLanguage(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "ja", "jp":
		return "ja"
	default:
		return "en"
	}
}

// Module provides Config and the seed profile to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewSeedProfile),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
