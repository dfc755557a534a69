/*

This file contains calibration validation. Strategies validate the tables
they actually consume before scoring, so a broken table only fails the
strategies that depend on it and the batch path can fall back per method.

*/

package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/risk29/riskcore/internal/types"
)

var ErrInvalidCalibration = errors.New("invalid calibration")

// weightSumTolerance mirrors the tolerance the original weight audit used
// for floating point drift in hand-maintained tables.
const weightSumTolerance = 0.001

// ValidateCalibration checks every table a strategy might consume. Intended
// for process startup; individual strategies use the narrower checks below.
func ValidateCalibration(cal *types.Calibration) error {
	return errors.Join(
		validateWeightTables(cal),
		validateRegimeWeights(cal),
	)
}

// validateWeightTables checks the tables consumed by the simple, weighted
// and time-decay strategies.
func validateWeightTables(cal *types.Calibration) error {
	if cal == nil {
		return errors.Join(ErrInvalidCalibration, errors.New("calibration is nil"))
	}

	for _, category := range types.Categories() {
		if len(cal.CategoryIndicators[category]) == 0 {
			return errors.Join(ErrInvalidCalibration,
				fmt.Errorf("category %q has no indicator list", category))
		}

		weights := cal.IndicatorWeights[category]
		if len(weights) == 0 {
			return errors.Join(ErrInvalidCalibration,
				fmt.Errorf("category %q has no weight table", category))
		}
		for id, weight := range weights {
			if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
				return errors.Join(ErrInvalidCalibration,
					fmt.Errorf("category %q indicator %q has invalid weight %f", category, id, weight))
			}
		}
	}

	m := cal.Multipliers
	if m.Persistent < 1 || m.Fresh < 1 || m.Moderate < 1 {
		return errors.Join(ErrInvalidCalibration,
			fmt.Errorf("momentum multipliers must be >= 1, got %+v", m))
	}

	return nil
}

// validateRegimeWeights checks the regime category weight table consumed by
// the regime-adaptive strategy (and, via delegation, the meta-ensemble).
// Every regime must have a full row summing to 1.0.
func validateRegimeWeights(cal *types.Calibration) error {
	if cal == nil {
		return errors.Join(ErrInvalidCalibration, errors.New("calibration is nil"))
	}

	for _, regime := range types.MarketRegimes() {
		row, ok := cal.RegimeCategoryWeights[regime]
		if !ok {
			return errors.Join(ErrInvalidCalibration,
				fmt.Errorf("regime %q has no category weight row", regime))
		}

		var sum float64
		for _, category := range types.Categories() {
			weight, ok := row[category]
			if !ok {
				return errors.Join(ErrInvalidCalibration,
					fmt.Errorf("regime %q is missing a weight for category %q", regime, category))
			}
			sum += weight
		}
		if math.Abs(sum-1.0) > weightSumTolerance {
			return errors.Join(ErrInvalidCalibration,
				fmt.Errorf("regime %q category weights sum to %.4f, want 1.0", regime, sum))
		}
	}

	return nil
}
