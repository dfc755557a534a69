/*

This file contains the default calibration for the risk engine.

Every number in here comes from the historical backtest that produced the
method catalog figures (see Methods.go). The values are calibration data:
they were chosen empirically, they are not derivable from the scoring logic,
and they must not be "corrected". Operators can override whole sections via
a YAML file (see Loader.go).

*/

package config

import (
	"github.com/risk29/riskcore/internal/types"
)

// DefaultCalibration returns the baseline calibration used when no override
// file is configured. A fresh value is returned on every call so callers can
// never alias the package defaults.
func DefaultCalibration() types.Calibration {
	return types.Calibration{
		// Indicator membership for the unweighted (simple average) strategy.
		CategoryIndicators: map[types.Category][]string{
			types.CategoryLiquidity: {"M2SL", "WALCL", "RRPONTSYD", "SOFR"},
			types.CategoryCredit: {
				"DGS10", "BAMLH0A0HYM2", "DRTSCILM",
				"YIELD_CURVE", "CONSUMER_DELINQ", "MORTGAGE_DELINQ",
			},
			types.CategoryMacro: {
				"UNRATE", "CPIAUCSL", "GDP", "SAHM_RULE",
				"HOUSING_STARTS", "RETAIL_SALES", "INDPRO", "PAYEMS",
			},
			types.CategoryValuation: {"NCBEILQ027S", "NASDAQCOM"},
			types.CategoryTechnical: {"VIXCLS", "DCOILWTICO", "DXY"},
		},

		// Research-based indicator weights. Each category row sums to 1.0;
		// the weighted average renormalizes over whichever indicators are
		// actually supplied.
		IndicatorWeights: map[types.Category]map[string]float64{
			types.CategoryLiquidity: {
				"M2SL":      0.30,
				"WALCL":     0.25,
				"RRPONTSYD": 0.30,
				"SOFR":      0.15,
			},
			types.CategoryCredit: {
				"DGS10":           0.15,
				"BAMLH0A0HYM2":    0.20,
				"DRTSCILM":        0.10,
				"YIELD_CURVE":     0.30, // most important credit signal
				"CONSUMER_DELINQ": 0.15,
				"MORTGAGE_DELINQ": 0.10,
			},
			types.CategoryMacro: {
				"UNRATE":         0.15,
				"CPIAUCSL":       0.15,
				"GDP":            0.15,
				"SAHM_RULE":      0.15, // key recession trigger
				"HOUSING_STARTS": 0.10,
				"RETAIL_SALES":   0.15,
				"INDPRO":         0.075,
				"PAYEMS":         0.075,
			},
			types.CategoryValuation: {
				"NCBEILQ027S": 0.60, // market cap to GDP
				"NASDAQCOM":   0.40,
			},
			types.CategoryTechnical: {
				"VIXCLS":     0.40, // most important technical signal
				"DCOILWTICO": 0.30,
				"DXY":        0.30,
			},
		},

		// Momentum bands for the four momentum-sensitive indicators. The
		// band boundaries differ slightly per indicator; the high-yield
		// spread has no moderate tier (zero disables it). All other
		// indicators bypass the adjuster entirely.
		MomentumBands: map[string]types.MomentumBands{
			types.IndicatorVolatility: {
				PersistentAbove: 60, // persistent high vol, market adjusted
				FreshAbove:      40, // fresh spike, full reaction
				ModerateAbove:   30,
			},
			types.IndicatorYieldCurve: {
				PersistentAbove: 60, // persistent inversion
				FreshAbove:      50, // fresh inversion
				ModerateAbove:   30,
			},
			types.IndicatorSahmRule: {
				PersistentAbove: 60, // deep recession, market adjusted
				FreshAbove:      40, // fresh recession signal
				ModerateAbove:   30,
			},
			types.IndicatorHighYieldSpread: {
				PersistentAbove: 60, // persistent credit stress
				FreshAbove:      40, // fresh credit spike
				ModerateAbove:   0,  // no moderate tier for credit spreads
			},
		},
		Multipliers: types.MomentumMultipliers{
			Persistent: 1.3, // reduced from 1.5: signal already priced in
			Fresh:      1.5,
			Moderate:   1.2,
		},

		// 3-way market-state classifier (meta-ensemble). Each input awards
		// 2 crisis points above Severe, 1 above Elevated.
		State: types.MarketStateThresholds{
			Volatility:          types.StateSignalThresholds{Default: 25.0, Severe: 35, Elevated: 25},
			YieldCurve:          types.StateSignalThresholds{Default: 20.0, Severe: 55, Elevated: 40},
			CreditSpread:        types.StateSignalThresholds{Default: 35.0, Severe: 50, Elevated: 40},
			SahmRule:            types.StateSignalThresholds{Default: 15.0, Severe: 50, Elevated: 30},
			CrisisScoreMin:      3,
			CalmScoreMax:        1,
			CalmVolatilityBelow: 20,
		},

		// 5-way market-regime classifier (regime-adaptive).
		Regime: types.MarketRegimeThresholds{
			VolatilityDefault: 25.0,
			YieldCurveDefault: 20.0,
			ValuationDefault:  70.0,
			CreditDefault:     35.0,

			CrisisVolatilityAbove: 40,
			CrisisCreditAbove:     60,
			BearYieldCurveAbove:   50,
			BearCreditAbove:       40,
			BubbleValuationAbove:  80,
			BubbleVolatilityBelow: 20,
			CalmVolatilityBelow:   20,
			CalmCreditBelow:       35,
		},

		// Regime-specific category weights for the overall score. Rows sum
		// to 1.0. Only the regime-adaptive strategy weights categories
		// unevenly; all other strategies average the five categories.
		RegimeCategoryWeights: map[types.MarketRegime]map[types.Category]float64{
			types.RegimeCrisis: {
				types.CategoryLiquidity: 0.25,
				types.CategoryCredit:    0.30, // credit dominates in a crisis
				types.CategoryMacro:     0.20,
				types.CategoryValuation: 0.10,
				types.CategoryTechnical: 0.15,
			},
			types.RegimeBearMarket: {
				types.CategoryLiquidity: 0.20,
				types.CategoryCredit:    0.30,
				types.CategoryMacro:     0.25,
				types.CategoryValuation: 0.15,
				types.CategoryTechnical: 0.10,
			},
			types.RegimeBubble: {
				types.CategoryLiquidity: 0.15,
				types.CategoryCredit:    0.15,
				types.CategoryMacro:     0.15,
				types.CategoryValuation: 0.40, // valuation dominates in a bubble
				types.CategoryTechnical: 0.15,
			},
			types.RegimeCalm: {
				types.CategoryLiquidity: 0.15,
				types.CategoryCredit:    0.15,
				types.CategoryMacro:     0.20,
				types.CategoryValuation: 0.35, // fundamentals focus
				types.CategoryTechnical: 0.15,
			},
			types.RegimeNormal: {
				types.CategoryLiquidity: 0.20,
				types.CategoryCredit:    0.20,
				types.CategoryMacro:     0.20,
				types.CategoryValuation: 0.20,
				types.CategoryTechnical: 0.20,
			},
		},
	}
}
