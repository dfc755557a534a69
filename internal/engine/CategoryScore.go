/*

This file contains the renormalizing category average, the building block
shared by every weighted strategy.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/types"
)

// NeutralScore is returned for a category with no usable indicator data:
// insufficient data reads as neutral risk, never as zero risk.
const NeutralScore = 50.0

// CategoryScore computes the weighted average of the indicators present in
// both the input set and the weight table. Indicators absent from the input
// are skipped, not zeroed, which renormalizes the average over the supplied
// indicators only. A category where nothing matched scores NeutralScore.
//
// Note the renormalization edge: with a single present indicator the
// category degenerates to exactly that indicator's value, regardless of its
// nominal weight.
func CategoryScore(indicators types.IndicatorSet, weights map[string]float64) float64 {
	var weightedSum, totalWeight float64
	for id, weight := range weights {
		value, ok := indicators[id]
		if !ok {
			continue
		}
		weightedSum += value * weight
		totalWeight += weight
	}

	if totalWeight <= 0 {
		return NeutralScore
	}
	return weightedSum / totalWeight
}

// weightedCategoryScores runs CategoryScore against every category's weight
// table and always yields a score for all five categories.
func weightedCategoryScores(indicators types.IndicatorSet, cal *types.Calibration) map[types.Category]float64 {
	scores := make(map[types.Category]float64, 5)
	for _, category := range types.Categories() {
		scores[category] = CategoryScore(indicators, cal.IndicatorWeights[category])
	}
	return scores
}

// meanCategoryScore averages the five category scores with equal weight.
func meanCategoryScore(scores map[types.Category]float64) float64 {
	var sum float64
	categories := types.Categories()
	for _, category := range categories {
		sum += scores[category]
	}
	return sum / float64(len(categories))
}
