/*

This file contains the YAML calibration loader. An override file replaces
whole sections of the default calibration: a section present in the file wins
outright, a section absent keeps the default. Partial merges inside a section
are deliberately not supported, so a file always states a complete table and
the effective weights are auditable from the file alone.

*/

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"
	"gopkg.in/yaml.v3"
)

var ErrCalibrationFile = errors.New("invalid calibration file")

var calibrationLogger = logger.GetForComponent("calibration_loader")

// calibrationFile mirrors types.Calibration with pointer sections so the
// loader can tell "absent" from "empty".
type calibrationFile struct {
	CategoryIndicators    map[types.Category][]string                        `yaml:"category_indicators"`
	IndicatorWeights      map[types.Category]map[string]float64              `yaml:"indicator_weights"`
	MomentumBands         map[string]types.MomentumBands                     `yaml:"momentum_bands"`
	Multipliers           *types.MomentumMultipliers                         `yaml:"momentum_multipliers"`
	State                 *types.MarketStateThresholds                       `yaml:"market_state"`
	Regime                *types.MarketRegimeThresholds                      `yaml:"market_regime"`
	RegimeCategoryWeights map[types.MarketRegime]map[types.Category]float64 `yaml:"regime_category_weights"`
}

// LoadCalibration returns the default calibration, with sections replaced
// from the YAML file at path when path is non-empty.
func LoadCalibration(path string) (types.Calibration, error) {
	cal := DefaultCalibration()
	if path == "" {
		return cal, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Calibration{}, errors.Join(ErrCalibrationFile, err)
	}

	var file calibrationFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return types.Calibration{}, errors.Join(ErrCalibrationFile,
			fmt.Errorf("failed to parse %s: %w", path, err))
	}

	replaced := 0
	if file.CategoryIndicators != nil {
		cal.CategoryIndicators = file.CategoryIndicators
		replaced++
	}
	if file.IndicatorWeights != nil {
		cal.IndicatorWeights = file.IndicatorWeights
		replaced++
	}
	if file.MomentumBands != nil {
		cal.MomentumBands = file.MomentumBands
		replaced++
	}
	if file.Multipliers != nil {
		cal.Multipliers = *file.Multipliers
		replaced++
	}
	if file.State != nil {
		cal.State = *file.State
		replaced++
	}
	if file.Regime != nil {
		cal.Regime = *file.Regime
		replaced++
	}
	if file.RegimeCategoryWeights != nil {
		cal.RegimeCategoryWeights = file.RegimeCategoryWeights
		replaced++
	}

	calibrationLogger.Info().
		Str("path", path).
		Int("sectionsReplaced", replaced).
		Msg("Calibration override applied")

	return cal, nil
}
