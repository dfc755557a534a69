package engine

import (
	"testing"

	"github.com/risk29/riskcore/internal/config"
	"github.com/risk29/riskcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMomentumDecayBands(t *testing.T) {
	cal := config.DefaultCalibration()

	cases := []struct {
		name string
		id   string
		in   float64
		want float64
	}{
		{"volatility fresh spike gets full multiplier", "VIXCLS", 45, 67.5},
		{"volatility persistent high gets reduced multiplier", "VIXCLS", 65, 84.5},
		{"volatility moderate band", "VIXCLS", 35, 42},
		{"volatility band boundary is strict", "VIXCLS", 30, 30},
		{"volatility low reading unadjusted", "VIXCLS", 20, 20},
		{"adjusted value capped at scale ceiling", "VIXCLS", 90, 100},
		{"yield curve fresh inversion band starts at 50", "YIELD_CURVE", 55, 82.5},
		{"yield curve moderate band", "YIELD_CURVE", 45, 54},
		{"sahm rule fresh recession signal", "SAHM_RULE", 45, 67.5},
		{"high yield spread has no moderate tier", "BAMLH0A0HYM2", 38, 38},
		{"high yield spread fresh credit spike", "BAMLH0A0HYM2", 45, 67.5},
		{"non-momentum indicator passes through", "M2SL", 75, 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adjusted := ApplyMomentumDecay(types.IndicatorSet{tc.id: tc.in}, &cal)
			assert.InDelta(t, tc.want, adjusted[tc.id], 1e-9)
		})
	}
}

func TestApplyMomentumDecayDoesNotMutateInput(t *testing.T) {
	cal := config.DefaultCalibration()
	indicators := types.IndicatorSet{"VIXCLS": 45, "M2SL": 60}

	_ = ApplyMomentumDecay(indicators, &cal)

	assert.Equal(t, 45.0, indicators["VIXCLS"])
	assert.Equal(t, 60.0, indicators["M2SL"])
}

func TestCalculateTimeDecayMomentumFeedsWeightedAverage(t *testing.T) {
	cal := config.DefaultCalibration()

	result, err := CalculateTimeDecayMomentum(types.IndicatorSet{"VIXCLS": 45}, &cal)
	require.NoError(t, err)

	// Technical holds only the adjusted volatility reading: 45 * 1.5.
	assert.InDelta(t, 67.5, result.CategoryScores[types.CategoryTechnical], 1e-9)

	// Identical to running the weighted average on the adjusted set.
	manual, err := CalculateWeightedAverage(types.IndicatorSet{"VIXCLS": 67.5}, &cal)
	require.NoError(t, err)
	assert.Equal(t, manual, result)
}
