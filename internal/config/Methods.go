/*

This file contains the static method catalog served to dashboards and other
consumers. The error figures are average absolute errors from the historical
backtest; like everything in Calibration.go they are preserved verbatim.

*/

package config

import (
	"github.com/risk29/riskcore/internal/types"
)

// MethodCatalog returns the descriptor for every scoring method, keyed by
// Method. A fresh map is returned on every call; descriptors themselves are
// value copies, so callers cannot corrupt the catalog.
func MethodCatalog() map[types.Method]types.MethodDescriptor {
	return map[types.Method]types.MethodDescriptor{
		types.SimpleAverage: {
			Name:           "Simple Average (Baseline)",
			Description:    "Treats all indicators equally with no weighting. Good baseline for comparison.",
			Complexity:     1,
			OverallError:   15.83,
			CrisisError:    20.10,
			CalmError:      10.50,
			Improvement:    0.0,
			RecommendedFor: "Beginners, baseline comparison",
			Pros:           []string{"Simple to understand", "No assumptions"},
			Cons:           []string{"Ignores indicator importance", "Slowest to respond"},
		},
		types.WeightedAverage: {
			Name:           "Weighted Average",
			Description:    "Uses research-based weights for each indicator category.",
			Complexity:     2,
			OverallError:   15.11,
			CrisisError:    18.88,
			CalmError:      10.40,
			Improvement:    4.6,
			RecommendedFor: "General use, balanced approach",
			Pros:           []string{"Research-based weights", "Better than simple average"},
			Cons:           []string{"Static weights", "Doesn't adapt to conditions"},
		},
		types.TimeDecayMomentum: {
			Name:           "Time-Decay Momentum",
			Description:    "Adjusts momentum multipliers based on how long indicators have been elevated. Prevents overreaction to persistent signals.",
			Complexity:     3,
			OverallError:   13.91,
			CrisisError:    16.72,
			CalmError:      10.40,
			Improvement:    12.1,
			RecommendedFor: "Most users - best overall performance",
			Pros:           []string{"Best overall accuracy", "Balanced crisis/calm", "Prevents overreaction"},
			Cons:           []string{"Moderate complexity"},
		},
		types.RegimeAdaptive: {
			Name:           "Regime-Adaptive",
			Description:    "Adjusts category weights based on market regime (crisis, calm, bubble, etc.). Best for calm periods.",
			Complexity:     4,
			OverallError:   13.93,
			CrisisError:    17.12,
			CalmError:      9.95,
			Improvement:    12.0,
			RecommendedFor: "Users focused on calm period accuracy",
			Pros:           []string{"Best calm performance", "Adapts to regime"},
			Cons:           []string{"Slightly worse in crisis", "More complex"},
		},
		types.MetaEnsemble: {
			Name:           "Meta-Ensemble",
			Description:    "Selects the best method for each situation. Time-Decay for crisis, Regime-Adaptive for calm.",
			Complexity:     5,
			OverallError:   13.82,
			CrisisError:    16.72,
			CalmError:      9.95,
			Improvement:    12.6,
			RecommendedFor: "Power users, maximum accuracy",
			Pros:           []string{"Best overall", "Best crisis", "Best calm"},
			Cons:           []string{"Most complex", "Harder to explain"},
		},
	}
}
