package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/risk29/riskcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCalibration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCalibrationWithoutPathReturnsDefaults(t *testing.T) {
	cal, err := LoadCalibration("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibration(), cal)
}

func TestLoadCalibrationReplacesWholeSections(t *testing.T) {
	path := writeTempCalibration(t, `
indicator_weights:
  liquidity:
    M2SL: 0.50
    SOFR: 0.50
  credit:
    BAMLH0A0HYM2: 1.0
  macro:
    UNRATE: 1.0
  valuation:
    NCBEILQ027S: 1.0
  technical:
    VIXCLS: 1.0
momentum_multipliers:
  persistent: 1.25
  fresh: 1.60
  moderate: 1.10
`)

	cal, err := LoadCalibration(path)
	require.NoError(t, err)

	// Overridden sections are replaced wholesale.
	assert.Equal(t, 0.50, cal.IndicatorWeights[types.CategoryLiquidity]["M2SL"])
	assert.Len(t, cal.IndicatorWeights[types.CategoryLiquidity], 2)
	assert.Equal(t, 1.60, cal.Multipliers.Fresh)

	// Untouched sections keep their defaults.
	defaults := DefaultCalibration()
	assert.Equal(t, defaults.MomentumBands, cal.MomentumBands)
	assert.Equal(t, defaults.RegimeCategoryWeights, cal.RegimeCategoryWeights)
	assert.Equal(t, defaults.State, cal.State)
}

func TestLoadCalibrationRejectsMalformedYAML(t *testing.T) {
	path := writeTempCalibration(t, "indicator_weights: [not, a, map]")

	_, err := LoadCalibration(path)
	assert.ErrorIs(t, err, ErrCalibrationFile)
}

func TestLoadCalibrationRejectsMissingFile(t *testing.T) {
	_, err := LoadCalibration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, ErrCalibrationFile)
}
