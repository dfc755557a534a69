/*

This file contains the time-decay momentum strategy and its adjuster. The
theory: a signal that has been elevated for a long time is already priced in,
so a persistent extreme reading gets a smaller multiplier than a fresh spike.

*/

package engine

import (
	"math"

	"github.com/risk29/riskcore/internal/types"
)

// momentumMultiplier picks the multiplier for one momentum-sensitive
// indicator value. Bands are checked top down with strict greater-than
// comparisons; a zero ModerateAbove disables the moderate tier.
func momentumMultiplier(value float64, bands types.MomentumBands, m types.MomentumMultipliers) float64 {
	switch {
	case value > bands.PersistentAbove:
		return m.Persistent
	case value > bands.FreshAbove:
		return m.Fresh
	case bands.ModerateAbove > 0 && value > bands.ModerateAbove:
		return m.Moderate
	default:
		return 1.0
	}
}

// ApplyMomentumDecay returns a fresh indicator set with the momentum
// multipliers applied. Indicators without a bands entry keep multiplier 1.0.
// Every adjusted value is capped at the indicator scale ceiling so a
// multiplier can never push a score past the 0-100 contract.
func ApplyMomentumDecay(indicators types.IndicatorSet, cal *types.Calibration) types.IndicatorSet {
	adjusted := make(types.IndicatorSet, len(indicators))
	for id, value := range indicators {
		multiplier := 1.0
		if bands, ok := cal.MomentumBands[id]; ok {
			multiplier = momentumMultiplier(value, bands, cal.Multipliers)
		}
		adjusted[id] = math.Min(value*multiplier, types.MaxIndicatorScore)
	}
	return adjusted
}

// CalculateTimeDecayMomentum rescales the momentum-sensitive indicators and
// feeds the full adjusted set through the weighted average strategy.
func CalculateTimeDecayMomentum(indicators types.IndicatorSet, cal *types.Calibration) (types.ScoringResult, error) {
	if err := validateWeightTables(cal); err != nil {
		return types.ScoringResult{}, err
	}

	return CalculateWeightedAverage(ApplyMomentumDecay(indicators, cal), cal)
}
