/*

This file contains the calibration types for the risk engine: every weight
table, band boundary and classifier threshold the scoring strategies consume.
A Calibration is built once at process start (defaults plus an optional YAML
override) and passed by reference into the engine; it is never mutated after
initialization.

All numeric values in here are empirical calibration data from historical
backtesting. They are preserved verbatim from configuration, not derived.

*/

package types

// MomentumBands defines the per-indicator value bands of the time-decay
// adjuster. Band checks are strict greater-than comparisons, applied top
// down: persistent, then fresh, then moderate.
type MomentumBands struct {
	// PersistentAbove marks a long-standing signal the market has already
	// priced in; it receives the reduced Persistent multiplier.
	PersistentAbove float64 `json:"persistent_above" yaml:"persistent_above"`
	// FreshAbove marks a fresh spike that gets the full Fresh multiplier.
	FreshAbove float64 `json:"fresh_above" yaml:"fresh_above"`
	// ModerateAbove marks a moderate signal. A zero value disables the
	// moderate tier for this indicator.
	ModerateAbove float64 `json:"moderate_above" yaml:"moderate_above"`
}

// MomentumMultipliers holds the three shared multipliers applied by the
// time-decay adjuster. Indicators without a bands entry always get 1.0.
type MomentumMultipliers struct {
	Persistent float64 `json:"persistent" yaml:"persistent"`
	Fresh      float64 `json:"fresh" yaml:"fresh"`
	Moderate   float64 `json:"moderate" yaml:"moderate"`
}

// StateSignalThresholds configures one input of the 3-way market-state
// classifier: the neutral default used when the indicator is absent and the
// two crisis-score thresholds.
type StateSignalThresholds struct {
	Default  float64 `json:"default" yaml:"default"`   // substituted when the indicator is missing
	Severe   float64 `json:"severe" yaml:"severe"`     // value > Severe awards 2 crisis points
	Elevated float64 `json:"elevated" yaml:"elevated"` // value > Elevated awards 1 crisis point
}

// MarketStateThresholds configures the 3-way market-state classifier used by
// the meta-ensemble strategy.
type MarketStateThresholds struct {
	Volatility   StateSignalThresholds `json:"volatility" yaml:"volatility"`
	YieldCurve   StateSignalThresholds `json:"yield_curve" yaml:"yield_curve"`
	CreditSpread StateSignalThresholds `json:"credit_spread" yaml:"credit_spread"`
	SahmRule     StateSignalThresholds `json:"sahm_rule" yaml:"sahm_rule"`

	// CrisisScoreMin is the minimum accumulated crisis score for "crisis".
	CrisisScoreMin int `json:"crisis_score_min" yaml:"crisis_score_min"`
	// CalmScoreMax is the maximum crisis score still compatible with "calm".
	CalmScoreMax int `json:"calm_score_max" yaml:"calm_score_max"`
	// CalmVolatilityBelow additionally requires volatility under this value
	// for "calm".
	CalmVolatilityBelow float64 `json:"calm_volatility_below" yaml:"calm_volatility_below"`
}

// MarketRegimeThresholds configures the 5-way market-regime classifier used
// by the regime-adaptive strategy. Rules are evaluated in order; the first
// match wins.
type MarketRegimeThresholds struct {
	// Neutral defaults substituted for absent indicators.
	VolatilityDefault float64 `json:"volatility_default" yaml:"volatility_default"`
	YieldCurveDefault float64 `json:"yield_curve_default" yaml:"yield_curve_default"`
	ValuationDefault  float64 `json:"valuation_default" yaml:"valuation_default"`
	CreditDefault     float64 `json:"credit_default" yaml:"credit_default"`

	// Rule 1: crisis when volatility OR credit spread spikes.
	CrisisVolatilityAbove float64 `json:"crisis_volatility_above" yaml:"crisis_volatility_above"`
	CrisisCreditAbove     float64 `json:"crisis_credit_above" yaml:"crisis_credit_above"`
	// Rule 2: bear market when the curve is inverted AND credit is elevated.
	BearYieldCurveAbove float64 `json:"bear_yield_curve_above" yaml:"bear_yield_curve_above"`
	BearCreditAbove     float64 `json:"bear_credit_above" yaml:"bear_credit_above"`
	// Rule 3: bubble when valuation is extreme AND volatility is low.
	BubbleValuationAbove  float64 `json:"bubble_valuation_above" yaml:"bubble_valuation_above"`
	BubbleVolatilityBelow float64 `json:"bubble_volatility_below" yaml:"bubble_volatility_below"`
	// Rule 4: calm when both volatility AND credit are low.
	CalmVolatilityBelow float64 `json:"calm_volatility_below" yaml:"calm_volatility_below"`
	CalmCreditBelow     float64 `json:"calm_credit_below" yaml:"calm_credit_below"`
}

// Calibration bundles every tunable table the scoring strategies read.
type Calibration struct {
	// CategoryIndicators lists, per category, the indicator IDs the simple
	// average strategy considers.
	CategoryIndicators map[Category][]string `json:"category_indicators" yaml:"category_indicators"`

	// IndicatorWeights holds the per-category weight tables used by the
	// renormalizing weighted average. Each table sums to 1.0 when complete;
	// only the weights of indicators actually present are used.
	IndicatorWeights map[Category]map[string]float64 `json:"indicator_weights" yaml:"indicator_weights"`

	// MomentumBands and Multipliers drive the time-decay adjuster.
	MomentumBands map[string]MomentumBands `json:"momentum_bands" yaml:"momentum_bands"`
	Multipliers   MomentumMultipliers      `json:"momentum_multipliers" yaml:"momentum_multipliers"`

	// State and Regime configure the two (deliberately separate) market
	// classifiers.
	State  MarketStateThresholds  `json:"market_state" yaml:"market_state"`
	Regime MarketRegimeThresholds `json:"market_regime" yaml:"market_regime"`

	// RegimeCategoryWeights maps each regime to its category weighting for
	// the overall score. Every row sums to 1.0.
	RegimeCategoryWeights map[MarketRegime]map[Category]float64 `json:"regime_category_weights" yaml:"regime_category_weights"`
}
