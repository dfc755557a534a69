/*

This file contains the 3-way market-state classifier consumed only by the
meta-ensemble strategy. It is intentionally separate from the 5-way regime
classifier in DetectMarketRegime.go: the two use overlapping but different
inputs, thresholds and output domains, and must not be merged.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/types"
)

// signalPoints awards crisis points for one input: 2 above the severe
// threshold, 1 above the elevated threshold.
func signalPoints(value float64, t types.StateSignalThresholds) int {
	switch {
	case value > t.Severe:
		return 2
	case value > t.Elevated:
		return 1
	default:
		return 0
	}
}

// DetectMarketState classifies the market as crisis, calm or normal from the
// volatility, yield-curve, high-yield-spread and Sahm-rule indicators.
// Missing indicators take their neutral defaults. The classification is
// recomputed from scratch on every call; nothing is carried over.
func DetectMarketState(indicators types.IndicatorSet, cal *types.Calibration) types.MarketState {
	t := cal.State

	volatility := indicators.GetOrDefault(types.IndicatorVolatility, t.Volatility.Default)
	yieldCurve := indicators.GetOrDefault(types.IndicatorYieldCurve, t.YieldCurve.Default)
	credit := indicators.GetOrDefault(types.IndicatorHighYieldSpread, t.CreditSpread.Default)
	sahm := indicators.GetOrDefault(types.IndicatorSahmRule, t.SahmRule.Default)

	crisisScore := signalPoints(volatility, t.Volatility) +
		signalPoints(yieldCurve, t.YieldCurve) +
		signalPoints(credit, t.CreditSpread) +
		signalPoints(sahm, t.SahmRule)

	switch {
	case crisisScore >= t.CrisisScoreMin:
		return types.StateCrisis
	case crisisScore <= t.CalmScoreMax && volatility < t.CalmVolatilityBelow:
		return types.StateCalm
	default:
		return types.StateNormal
	}
}
