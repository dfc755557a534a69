/*

This file contains the method dispatcher: single-method scoring with an
explicit fallback for unrecognized names, and the batch path that runs all
five methods with per-method failure isolation.

*/

package engine

import (
	"fmt"

	"github.com/risk29/riskcore/internal/logger"
	"github.com/risk29/riskcore/internal/types"
	"golang.org/x/sync/errgroup"
)

var dispatchLogger = logger.GetForComponent("method_dispatcher")

// MethodOutcome is one slot of a batch run. FellBack makes the isolation
// policy visible in the type: when a strategy fails, its slot carries the
// weighted average result (or the neutral result if even that failed) and
// the reason.
type MethodOutcome struct {
	Method         types.Method        `json:"method"`
	Result         types.ScoringResult `json:"result"`
	FellBack       bool                `json:"fell_back"`
	FallbackReason string              `json:"fallback_reason,omitempty"`
}

// Score runs a single scoring method. The switch is exhaustive over the
// Method enum; an out-of-range value can only come from a caller bypassing
// ParseMethod and is treated like an unknown name.
func Score(indicators types.IndicatorSet, method types.Method, cal *types.Calibration) (types.ScoringResult, error) {
	switch method {
	case types.SimpleAverage:
		return CalculateSimpleAverage(indicators, cal)
	case types.WeightedAverage:
		return CalculateWeightedAverage(indicators, cal)
	case types.TimeDecayMomentum:
		return CalculateTimeDecayMomentum(indicators, cal)
	case types.RegimeAdaptive:
		return CalculateRegimeAdaptive(indicators, cal)
	case types.MetaEnsemble:
		return CalculateMetaEnsemble(indicators, cal)
	default:
		dispatchLogger.Warn().
			Int("method", int(method)).
			Str("substitute", types.DefaultMethod.String()).
			Msg("Out-of-range method value, using default method")
		return Score(indicators, types.DefaultMethod, cal)
	}
}

// ScoreByName resolves an externally supplied method name and scores with
// it. Unrecognized names are non-fatal: a warning is logged and the default
// method is substituted. The method actually used is returned so callers can
// surface the substitution.
func ScoreByName(indicators types.IndicatorSet, name string, cal *types.Calibration) (types.ScoringResult, types.Method, error) {
	method, ok := types.ParseMethod(name)
	if !ok {
		dispatchLogger.Warn().
			Str("requested", name).
			Str("substitute", method.String()).
			Msg("Unknown scoring method requested, using default method")
	}

	result, err := Score(indicators, method, cal)
	return result, method, err
}

// ScoreAllMethods runs every scoring method against the same indicator set
// and returns one outcome per method. Methods run concurrently; they are
// pure functions of their read-only inputs, so no synchronization beyond the
// group is needed. A method that errors or panics never aborts the batch:
// its slot falls back to the weighted average result.
func ScoreAllMethods(indicators types.IndicatorSet, cal *types.Calibration) map[types.Method]MethodOutcome {
	methods := types.Methods()
	outcomes := make([]MethodOutcome, len(methods))

	var group errgroup.Group
	for i, method := range methods {
		i, method := i, method
		group.Go(func() error {
			result, err := runIsolated(indicators, method, cal)
			if err != nil {
				dispatchLogger.Warn().
					Str("method", method.String()).
					Err(err).
					Msg("Scoring method failed, substituting weighted average fallback")
				outcomes[i] = MethodOutcome{
					Method:         method,
					Result:         fallbackResult(indicators, cal),
					FellBack:       true,
					FallbackReason: err.Error(),
				}
				return nil
			}

			outcomes[i] = MethodOutcome{Method: method, Result: result}
			return nil
		})
	}
	// Workers only ever return nil; failures are captured in the outcomes.
	_ = group.Wait()

	byMethod := make(map[types.Method]MethodOutcome, len(outcomes))
	for _, outcome := range outcomes {
		byMethod[outcome.Method] = outcome
	}
	return byMethod
}

// runIsolated invokes one method and converts a panic inside the strategy
// into an error, so a single malformed input cannot take down the batch.
func runIsolated(indicators types.IndicatorSet, method types.Method, cal *types.Calibration) (result types.ScoringResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring method %s panicked: %v", method, r)
		}
	}()
	return Score(indicators, method, cal)
}

// fallbackResult is the safe substitute for a failed method: the weighted
// average result, or the all-neutral result if the weighted average itself
// cannot run (e.g. the calibration is broken across the board).
func fallbackResult(indicators types.IndicatorSet, cal *types.Calibration) types.ScoringResult {
	if result, err := CalculateWeightedAverage(indicators, cal); err == nil {
		return result
	}

	categoryScores := make(map[types.Category]float64, 5)
	for _, category := range types.Categories() {
		categoryScores[category] = NeutralScore
	}
	return types.ScoringResult{Overall: NeutralScore, CategoryScores: categoryScores}
}
