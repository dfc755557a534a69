// Calibration audit script: loads the effective calibration (defaults plus
// the optional CALIBRATION_FILE override) and reports whether every weight
// table row sums to 1.0 and the classifier tables pass validation.
package main

import (
	"os"

	"github.com/risk29/riskcore/internal/config"
	"github.com/risk29/riskcore/internal/engine"
	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Initialize(logLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	calibrationFile := os.Getenv("CALIBRATION_FILE")
	calibration, err := config.LoadCalibration(calibrationFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load calibration")
	}

	for _, category := range types.Categories() {
		var sum float64
		weights := calibration.IndicatorWeights[category]
		for _, weight := range weights {
			sum += weight
		}
		log.Info().
			Str("category", string(category)).
			Int("indicators", len(weights)).
			Float64("weightSum", sum).
			Msg("Category weight table")
	}

	for _, regime := range types.MarketRegimes() {
		var sum float64
		for _, weight := range calibration.RegimeCategoryWeights[regime] {
			sum += weight
		}
		log.Info().
			Str("regime", string(regime)).
			Float64("weightSum", sum).
			Msg("Regime category weight row")
	}

	if err := engine.ValidateCalibration(&calibration); err != nil {
		log.Fatal().Err(err).Msg("Calibration failed validation")
	}
	log.Info().Msg("Calibration validated successfully.")
}
