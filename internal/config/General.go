package config

import (
	"os"

	"github.com/rs/zerolog/log"
)

// AppConfig holds all application configuration loaded from environment
// variables. These are populated at startup by the LoadConfig function.
var (
	// WebPort is the port the JSON API listens on.
	WebPort string

	// CalibrationFile is an optional path to a YAML calibration override.
	// Empty means the built-in defaults are used as-is.
	CalibrationFile string

	// SnapshotFile is an optional path to an indicator snapshot JSON file.
	// When set, the process scores the snapshot once and exits instead of
	// serving.
	SnapshotFile string

	// SnapshotMethod names the scoring method used in one-shot mode. Empty
	// or unrecognized names fall back to the default method; the literal
	// value "all" runs the full batch.
	SnapshotMethod string
)

// LoadConfig loads configuration from environment variables and sets the
// global config vars. All variables are optional; the engine itself needs no
// external services.
func LoadConfig() error {
	log.Info().Msg("Loading application configuration from environment variables...")

	WebPort = getEnvOrDefault("WEB_PORT", "8080")
	CalibrationFile = getEnvOrDefault("CALIBRATION_FILE", "")
	SnapshotFile = getEnvOrDefault("SNAPSHOT_FILE", "")
	SnapshotMethod = getEnvOrDefault("SCORING_METHOD", "all")

	log.Debug().
		Str("WebPort", WebPort).
		Str("CalibrationFile", CalibrationFile).
		Str("SnapshotFile", SnapshotFile).
		Str("SnapshotMethod", SnapshotMethod).
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnvOrDefault retrieves a string environment variable, returning the
// given default when it is unset or empty.
func getEnvOrDefault(key, def string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return def
}
