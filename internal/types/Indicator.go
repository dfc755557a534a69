/*

This file contains the input-side types for the risk engine: the indicator set
supplied by an external data provider and the fixed category identifiers.

*/

package types

// Well-known indicator IDs referenced by the regime classifiers and the
// time-decay adjuster. All other indicators are opaque to the engine and only
// matter through the weight tables.
const (
	IndicatorVolatility      = "VIXCLS"       // CBOE volatility index
	IndicatorYieldCurve      = "YIELD_CURVE"  // 10Y-2Y treasury spread
	IndicatorHighYieldSpread = "BAMLH0A0HYM2" // ICE BofA high yield OAS
	IndicatorSahmRule        = "SAHM_RULE"    // Sahm recession rule
	IndicatorEquityValuation = "NCBEILQ027S"  // market cap to GDP
)

// MaxIndicatorScore is the contractual ceiling of the 0-100 indicator scale.
// The engine never pushes an adjusted value past it.
const MaxIndicatorScore = 100.0

// IndicatorSet maps indicator IDs to pre-normalized risk scores (0-100 by
// contract, not enforced). The engine treats it as read-only.
type IndicatorSet map[string]float64

// GetOrDefault returns the value for id, or def when the indicator was not
// supplied. Classifiers use this to substitute their neutral defaults.
func (s IndicatorSet) GetOrDefault(id string, def float64) float64 {
	if v, ok := s[id]; ok {
		return v
	}
	return def
}

// Category is one of the five fixed indicator groupings.
type Category string

const (
	CategoryLiquidity Category = "liquidity"
	CategoryCredit    Category = "credit"
	CategoryMacro     Category = "macro"
	CategoryValuation Category = "valuation"
	CategoryTechnical Category = "technical"
)

// Categories returns the five categories in their canonical order. The
// returned slice is freshly allocated and safe to modify.
func Categories() []Category {
	return []Category{
		CategoryLiquidity,
		CategoryCredit,
		CategoryMacro,
		CategoryValuation,
		CategoryTechnical,
	}
}
