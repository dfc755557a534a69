/*

This file contains the simple average strategy: the unweighted baseline every
other method is benchmarked against.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/types"
)

// CalculateSimpleAverage scores each category as the plain arithmetic mean of
// whichever of its indicators were supplied, with the neutral default for
// empty categories. The overall score is the unweighted mean of the five
// category scores. No weights, no regime awareness.
func CalculateSimpleAverage(indicators types.IndicatorSet, cal *types.Calibration) (types.ScoringResult, error) {
	if err := validateWeightTables(cal); err != nil {
		return types.ScoringResult{}, err
	}

	categoryScores := make(map[types.Category]float64, 5)
	for _, category := range types.Categories() {
		var sum float64
		var count int
		for _, id := range cal.CategoryIndicators[category] {
			if value, ok := indicators[id]; ok {
				sum += value
				count++
			}
		}

		if count > 0 {
			categoryScores[category] = sum / float64(count)
		} else {
			categoryScores[category] = NeutralScore
		}
	}

	return types.ScoringResult{
		Overall:        meanCategoryScore(categoryScores),
		CategoryScores: categoryScores,
	}, nil
}
