package engine

import (
	"testing"

	"github.com/risk29/riskcore/internal/config"
	"github.com/risk29/riskcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaEnsembleDelegatesByState(t *testing.T) {
	cal := config.DefaultCalibration()

	calm := types.IndicatorSet{"VIXCLS": 10, "BAMLH0A0HYM2": 10}
	require.Equal(t, types.StateCalm, DetectMarketState(calm, &cal))

	crisis := types.IndicatorSet{
		"VIXCLS": 45, "YIELD_CURVE": 60, "BAMLH0A0HYM2": 55, "SAHM_RULE": 55,
	}
	require.Equal(t, types.StateCrisis, DetectMarketState(crisis, &cal))

	normal := types.IndicatorSet{"VIXCLS": 28}
	require.Equal(t, types.StateNormal, DetectMarketState(normal, &cal))

	// Calm delegates to regime-adaptive, bit for bit.
	got, err := CalculateMetaEnsemble(calm, &cal)
	require.NoError(t, err)
	want, err := CalculateRegimeAdaptive(calm, &cal)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Crisis and normal both delegate to time-decay momentum.
	for _, indicators := range []types.IndicatorSet{crisis, normal} {
		got, err := CalculateMetaEnsemble(indicators, &cal)
		require.NoError(t, err)
		want, err := CalculateTimeDecayMomentum(indicators, &cal)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMetaEnsemblePropagatesDelegateFailure(t *testing.T) {
	cal := config.DefaultCalibration()
	delete(cal.RegimeCategoryWeights, types.RegimeCalm)

	// Calm state forces the regime-adaptive delegate, whose table is broken.
	calm := types.IndicatorSet{"VIXCLS": 10, "BAMLH0A0HYM2": 10}
	_, err := CalculateMetaEnsemble(calm, &cal)
	assert.ErrorIs(t, err, ErrInvalidCalibration)
}
