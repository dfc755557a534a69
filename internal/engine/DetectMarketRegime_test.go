package engine

import (
	"testing"

	"github.com/risk29/riskcore/internal/config"
	"github.com/risk29/riskcore/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDetectMarketRegime(t *testing.T) {
	cal := config.DefaultCalibration()

	cases := []struct {
		name       string
		indicators types.IndicatorSet
		want       types.MarketRegime
	}{
		{
			// The crisis rule fires first regardless of other inputs.
			"volatility spike alone is crisis",
			types.IndicatorSet{"VIXCLS": 45},
			types.RegimeCrisis,
		},
		{
			"credit spike alone is crisis",
			types.IndicatorSet{"BAMLH0A0HYM2": 65},
			types.RegimeCrisis,
		},
		{
			"inverted curve with elevated credit is a bear market",
			types.IndicatorSet{"YIELD_CURVE": 60, "BAMLH0A0HYM2": 45, "VIXCLS": 30},
			types.RegimeBearMarket,
		},
		{
			"extreme valuation on low volatility is a bubble",
			types.IndicatorSet{"NCBEILQ027S": 85, "VIXCLS": 15, "BAMLH0A0HYM2": 40},
			types.RegimeBubble,
		},
		{
			"low volatility and low credit is calm",
			types.IndicatorSet{"VIXCLS": 10, "BAMLH0A0HYM2": 10},
			types.RegimeCalm,
		},
		{
			"neutral defaults read normal",
			types.IndicatorSet{},
			types.RegimeNormal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectMarketRegime(tc.indicators, &cal))
		})
	}
}

func TestClassifiersStayDistinct(t *testing.T) {
	cal := config.DefaultCalibration()

	// Volatility at 38: the 5-way classifier stays below its crisis bar
	// (40) while the 3-way classifier already counts it as severe (>35).
	// Keeping the two classifiers separate is load-bearing.
	indicators := types.IndicatorSet{
		"VIXCLS": 38, "YIELD_CURVE": 45, "BAMLH0A0HYM2": 30, "SAHM_RULE": 10,
	}

	assert.Equal(t, types.RegimeNormal, DetectMarketRegime(indicators, &cal))
	assert.Equal(t, types.StateCrisis, DetectMarketState(indicators, &cal))
}
