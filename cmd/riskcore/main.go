package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/risk29/riskcore/internal/config"
	"github.com/risk29/riskcore/internal/engine"
	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"
	"github.com/risk29/riskcore/internal/web"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// main is the entry point for the riskcore scoring service. With
// SNAPSHOT_FILE set it scores one indicator snapshot and exits; otherwise it
// serves the scoring API.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log.Info().Msg("Riskcore scoring engine starting...")

	// Load calibration (defaults plus optional YAML override) and validate
	// it once up front. The calibration is immutable from here on.
	calibration, err := config.LoadCalibration(config.CalibrationFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load calibration")
	}
	if err := engine.ValidateCalibration(&calibration); err != nil {
		log.Fatal().Err(err).Msg("Calibration failed validation")
	}
	log.Info().Msg("Calibration loaded and validated.")

	catalog := config.MethodCatalog()

	// --- 2. One-Shot Mode ---
	if config.SnapshotFile != "" {
		if err := scoreSnapshot(config.SnapshotFile, config.SnapshotMethod, &calibration, catalog); err != nil {
			log.Fatal().Err(err).Str("snapshot", config.SnapshotFile).Msg("Snapshot scoring failed")
		}
		return
	}

	// --- 3. Serve Mode ---
	webServer := web.NewWebServer(config.WebPort, &calibration, catalog)
	log.Info().
		Str("port", config.WebPort).
		Str("url", "http://localhost:"+config.WebPort).
		Msg("Starting riskcore API server")
	if err := webServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("Web server failed")
	}
}

// snapshotOutput mirrors the batch API response for the one-shot path.
type snapshotOutput struct {
	Timestamp   int64                     `json:"timestamp"`
	LastUpdated string                    `json:"last_updated"`
	Methods     map[string]snapshotMethod `json:"methods"`
}

type snapshotMethod struct {
	OverallScore   float64                    `json:"overall_score"`
	CategoryScores map[types.Category]float64 `json:"category_scores"`
	FellBack       bool                       `json:"fell_back,omitempty"`
	FallbackReason string                     `json:"fallback_reason,omitempty"`
	Metadata       types.MethodDescriptor     `json:"metadata"`
}

// scoreSnapshot reads an indicator snapshot JSON file (indicator ID ->
// normalized 0-100 score), scores it and writes the result to stdout.
// methodName "all" runs the full batch; anything else runs one method, with
// the engine's usual fallback for unknown names.
func scoreSnapshot(path, methodName string, cal *types.Calibration, catalog map[types.Method]types.MethodDescriptor) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var indicators types.IndicatorSet
	if err := json.Unmarshal(raw, &indicators); err != nil {
		return err
	}
	log.Info().Int("indicators", len(indicators)).Str("snapshot", path).Msg("Snapshot loaded")

	now := time.Now()
	output := snapshotOutput{
		Timestamp:   now.Unix(),
		LastUpdated: now.Format(time.RFC3339),
		Methods:     make(map[string]snapshotMethod),
	}

	if methodName == "all" {
		for method, outcome := range engine.ScoreAllMethods(indicators, cal) {
			output.Methods[method.String()] = snapshotMethod{
				OverallScore:   outcome.Result.Overall,
				CategoryScores: outcome.Result.CategoryScores,
				FellBack:       outcome.FellBack,
				FallbackReason: outcome.FallbackReason,
				Metadata:       catalog[method],
			}
		}
	} else {
		result, method, err := engine.ScoreByName(indicators, methodName, cal)
		if err != nil {
			return err
		}
		output.Methods[method.String()] = snapshotMethod{
			OverallScore:   result.Overall,
			CategoryScores: result.CategoryScores,
			Metadata:       catalog[method],
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
