/*

This file contains the regime-adaptive strategy: the only method that weights
categories unevenly, with the weighting selected by the detected regime.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"
)

var regimeLogger = logger.GetForComponent("regime_adaptive")

// CalculateRegimeAdaptive computes category scores exactly like the weighted
// average strategy, then combines them with the category weights of the
// detected market regime instead of an even mean.
func CalculateRegimeAdaptive(indicators types.IndicatorSet, cal *types.Calibration) (types.ScoringResult, error) {
	if err := validateWeightTables(cal); err != nil {
		return types.ScoringResult{}, err
	}
	if err := validateRegimeWeights(cal); err != nil {
		return types.ScoringResult{}, err
	}

	regime := DetectMarketRegime(indicators, cal)
	regimeWeights := cal.RegimeCategoryWeights[regime]

	categoryScores := weightedCategoryScores(indicators, cal)

	var overall float64
	for _, category := range types.Categories() {
		overall += categoryScores[category] * regimeWeights[category]
	}

	regimeLogger.Debug().
		Str("regime", string(regime)).
		Float64("overall", overall).
		Msg("Regime-adaptive score calculated")

	return types.ScoringResult{
		Overall:        overall,
		CategoryScores: categoryScores,
	}, nil
}
