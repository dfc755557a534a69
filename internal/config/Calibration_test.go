package config

import (
	"math"
	"testing"

	"github.com/risk29/riskcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalibrationWeightTablesSumToOne(t *testing.T) {
	cal := DefaultCalibration()

	for _, category := range types.Categories() {
		weights := cal.IndicatorWeights[category]
		require.NotEmpty(t, weights, string(category))

		var sum float64
		for _, weight := range weights {
			sum += weight
		}
		assert.InDelta(t, 1.0, sum, 0.001, string(category))
	}
}

func TestDefaultCalibrationRegimeRowsSumToOne(t *testing.T) {
	cal := DefaultCalibration()

	for _, regime := range types.MarketRegimes() {
		row, ok := cal.RegimeCategoryWeights[regime]
		require.True(t, ok, string(regime))
		require.Len(t, row, 5, string(regime))

		var sum float64
		for _, weight := range row {
			sum += weight
		}
		assert.True(t, math.Abs(sum-1.0) < 0.001,
			"regime %s weights sum to %f", regime, sum)
	}
}

func TestDefaultCalibrationMomentumBands(t *testing.T) {
	cal := DefaultCalibration()

	// Exactly the four momentum-sensitive indicators carry bands.
	require.Len(t, cal.MomentumBands, 4)
	for _, id := range []string{
		types.IndicatorVolatility,
		types.IndicatorYieldCurve,
		types.IndicatorSahmRule,
		types.IndicatorHighYieldSpread,
	} {
		bands, ok := cal.MomentumBands[id]
		require.True(t, ok, id)
		assert.Greater(t, bands.PersistentAbove, bands.FreshAbove, id)
	}

	// The high-yield spread has no moderate tier.
	assert.Zero(t, cal.MomentumBands[types.IndicatorHighYieldSpread].ModerateAbove)
}

func TestDefaultCalibrationReturnsFreshCopies(t *testing.T) {
	first := DefaultCalibration()
	first.IndicatorWeights[types.CategoryLiquidity]["M2SL"] = 99

	second := DefaultCalibration()
	assert.Equal(t, 0.30, second.IndicatorWeights[types.CategoryLiquidity]["M2SL"])
}

func TestMethodCatalogCoversEveryMethod(t *testing.T) {
	catalog := MethodCatalog()

	require.Len(t, catalog, len(types.Methods()))
	for _, method := range types.Methods() {
		descriptor, ok := catalog[method]
		require.True(t, ok, method.String())
		assert.NotEmpty(t, descriptor.Name, method.String())
		assert.NotEmpty(t, descriptor.Description, method.String())
		assert.Positive(t, descriptor.Complexity, method.String())
		assert.Positive(t, descriptor.OverallError, method.String())
	}

	// The backtested figures behind the meta-ensemble's delegation choices.
	assert.Equal(t, 13.82, catalog[types.MetaEnsemble].OverallError)
	assert.Equal(t, 16.72, catalog[types.TimeDecayMomentum].CrisisError)
	assert.Equal(t, 9.95, catalog[types.RegimeAdaptive].CalmError)
}
