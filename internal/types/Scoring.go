/*

This file contains the output-side types of the risk engine: the scoring
result returned by every strategy and the two ephemeral market
classifications consumed by the adaptive strategies.

*/

package types

// ScoringResult is the product of a single strategy run: one composite risk
// score plus a score per category. Results are freshly allocated on every
// call and never persisted by the engine. Scores stay in 0-100 for
// in-contract inputs but are not hard-clamped.
type ScoringResult struct {
	Overall        float64              `json:"overall_score"`
	CategoryScores map[Category]float64 `json:"category_scores"`
}

// MarketState is the 3-way classification used by the meta-ensemble strategy
// to pick a delegate.
type MarketState string

const (
	StateCrisis MarketState = "crisis"
	StateCalm   MarketState = "calm"
	StateNormal MarketState = "normal"
)

// MarketRegime is the 5-way classification used by the regime-adaptive
// strategy to select its category weighting. It is intentionally distinct
// from MarketState: different inputs, different thresholds, different
// output domain.
type MarketRegime string

const (
	RegimeCrisis     MarketRegime = "crisis"
	RegimeBearMarket MarketRegime = "bear_market"
	RegimeBubble     MarketRegime = "bubble"
	RegimeCalm       MarketRegime = "calm"
	RegimeNormal     MarketRegime = "normal"
)

// MarketRegimes returns all regimes in their canonical order.
func MarketRegimes() []MarketRegime {
	return []MarketRegime{
		RegimeCrisis,
		RegimeBearMarket,
		RegimeBubble,
		RegimeCalm,
		RegimeNormal,
	}
}
