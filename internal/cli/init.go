// Package cli provides the shared startup plumbing for cmd binaries:
// logger, .env loading, config validation and backend construction.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"belanja/internal/backend"
	"belanja/internal/config"
	applog "belanja/internal/log"
)

// SetupLogger initializes structured logging and installs it as the
// process default. LOG_LEVEL picks the level; info when unset.
func SetupLogger() *slog.Logger {
	return applog.New(os.Getenv("LOG_LEVEL"))
}

// LoadEnvFile loads a .env file for local development. Missing files are
// fine; production sets real environment variables.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and exits the process when
// it does not validate.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend constructs the configured blob backend or exits.
func InitBackend(logger *slog.Logger, cfg *config.Config) *backend.Result {
	res, err := backend.New(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, applog.ForComponent(logger, applog.ComponentBackend))
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return res
}
