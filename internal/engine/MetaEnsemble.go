/*

This file contains the meta-ensemble strategy: a best-of-breed selector that
classifies the market state and delegates the entire calculation to the
method with the best backtested record for that state.

*/

package engine

import (
	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"
)

var ensembleLogger = logger.GetForComponent("meta_ensemble")

// CalculateMetaEnsemble classifies the market state and returns the chosen
// delegate's result unchanged:
//
//   - crisis: time-decay momentum (best crisis error, 16.72)
//   - calm:   regime-adaptive (best calm error, 9.95)
//   - normal: time-decay momentum (default choice)
//
// The state is recomputed from the indicators on every call; there is no
// persisted machine state.
func CalculateMetaEnsemble(indicators types.IndicatorSet, cal *types.Calibration) (types.ScoringResult, error) {
	state := DetectMarketState(indicators, cal)

	ensembleLogger.Debug().
		Str("state", string(state)).
		Msg("Meta-ensemble selecting delegate")

	switch state {
	case types.StateCrisis:
		return CalculateTimeDecayMomentum(indicators, cal)
	case types.StateCalm:
		return CalculateRegimeAdaptive(indicators, cal)
	default:
		return CalculateTimeDecayMomentum(indicators, cal)
	}
}
