/*

This file contains the 5-way market-regime classifier consumed only by the
regime-adaptive strategy. See DetectMarketState.go for why the two
classifiers stay separate.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/types"
)

// DetectMarketRegime classifies the market into one of five regimes from the
// volatility, yield-curve, valuation and high-yield-spread indicators,
// substituting neutral defaults for missing ones. The rules are ordered and
// disjoint; the first match wins:
//
//  1. crisis      - volatility or credit spread spiking
//  2. bear_market - inverted curve with elevated credit
//  3. bubble      - extreme valuation on low volatility
//  4. calm        - low volatility and low credit
//  5. normal      - everything else
func DetectMarketRegime(indicators types.IndicatorSet, cal *types.Calibration) types.MarketRegime {
	t := cal.Regime

	volatility := indicators.GetOrDefault(types.IndicatorVolatility, t.VolatilityDefault)
	yieldCurve := indicators.GetOrDefault(types.IndicatorYieldCurve, t.YieldCurveDefault)
	valuation := indicators.GetOrDefault(types.IndicatorEquityValuation, t.ValuationDefault)
	credit := indicators.GetOrDefault(types.IndicatorHighYieldSpread, t.CreditDefault)

	switch {
	case volatility > t.CrisisVolatilityAbove || credit > t.CrisisCreditAbove:
		return types.RegimeCrisis
	case yieldCurve > t.BearYieldCurveAbove && credit > t.BearCreditAbove:
		return types.RegimeBearMarket
	case valuation > t.BubbleValuationAbove && volatility < t.BubbleVolatilityBelow:
		return types.RegimeBubble
	case volatility < t.CalmVolatilityBelow && credit < t.CalmCreditBelow:
		return types.RegimeCalm
	default:
		return types.RegimeNormal
	}
}
