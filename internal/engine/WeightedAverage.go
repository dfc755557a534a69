/*

This file contains the weighted average strategy. It is also the designated
fallback: the batch dispatcher substitutes its result when another strategy
fails.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/types"
)

// CalculateWeightedAverage scores each category with its renormalizing weight
// table and averages the five category scores evenly. Indicator-level weights
// apply inside a category; category-level weights deliberately do not apply
// here (only the regime-adaptive strategy weights categories).
func CalculateWeightedAverage(indicators types.IndicatorSet, cal *types.Calibration) (types.ScoringResult, error) {
	if err := validateWeightTables(cal); err != nil {
		return types.ScoringResult{}, err
	}

	categoryScores := weightedCategoryScores(indicators, cal)
	return types.ScoringResult{
		Overall:        meanCategoryScore(categoryScores),
		CategoryScores: categoryScores,
	}, nil
}
