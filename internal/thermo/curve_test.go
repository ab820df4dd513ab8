package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

func TestCurve(t *testing.T) {
	ev := New(Options{})
	rec := testRecord()

	points, err := ev.Curve(rec, model.TempRange{Min: 300, Max: 2400}, 10, model.ProcessParameters{
		Field: 2e6, Radius: 5e-6,
	})
	require.NoError(t, err)
	require.Len(t, points, 211)

	for i, p := range points {
		if i > 0 {
			assert.Greater(t, p.TempK, points[i-1].TempK)
		}
		// Each sample carries the same correction on top of equilibrium.
		off, err := ev.OffEquilibrium(rec, p.TempK, 2e6, 5e-6)
		require.NoError(t, err)
		assert.InDelta(t, off.Effective, p.DGEff, 1e-9)
		assert.InDelta(t, off.Equilibrium, p.DGEq, 1e-9)
	}

	// Samples beyond the validated 298-2000 K window are flagged.
	last := points[len(points)-1]
	assert.Equal(t, 2400.0, last.TempK)
	assert.True(t, last.Extrapolated)
	assert.False(t, points[0].Extrapolated)
}

func TestCurve_FractionalStep(t *testing.T) {
	ev := New(Options{})

	// A 0.1 K step must land exactly on the range endpoint instead of
	// drifting past it.
	points, err := ev.Curve(testRecord(), model.TempRange{Min: 300, Max: 301}, 0.1, model.ProcessParameters{})
	require.NoError(t, err)
	require.Len(t, points, 11)
	assert.InDelta(t, 300, points[0].TempK, 1e-9)
	assert.InDelta(t, 301, points[10].TempK, 1e-9)
}

func TestCurve_InvalidStep(t *testing.T) {
	ev := New(Options{})
	rec := testRecord()

	_, err := ev.Curve(rec, model.TempRange{Min: 300, Max: 400}, 0, model.ProcessParameters{})
	assert.Error(t, err)

	_, err = ev.Curve(rec, model.TempRange{Min: 300, Max: 400}, -5, model.ProcessParameters{})
	assert.Error(t, err)
}

func TestCurve_InvalidRange(t *testing.T) {
	ev := New(Options{})
	rec := testRecord()

	_, err := ev.Curve(rec, model.TempRange{Min: 500, Max: 500}, 10, model.ProcessParameters{})
	assert.Error(t, err)
}

func TestCrossover(t *testing.T) {
	ev := New(Options{})

	// dG = -100 + 0.1*T crosses zero at exactly 1000 K.
	rec := &model.CompoundRecord{
		Name: "lin", Formula: "TiO2", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-100, 0.1, 0, 0},
		TempRange:    model.TempRange{Min: 300, Max: 2400},
		Electrons:    4,
	}

	tempK, found, err := ev.Crossover(rec, 0, 0, rec.TempRange)
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 1000, tempK, 0.5)
}

func TestCrossover_FieldShift(t *testing.T) {
	ev := New(Options{})

	rec := &model.CompoundRecord{
		Name: "lin", Formula: "TiO2", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-100, 0.1, 0, 0},
		TempRange:    model.TempRange{Min: 300, Max: 2400},
		Electrons:    4,
	}

	// The electrostatic term shifts the line down by 4*F*E*r/1000 kJ/mol,
	// moving the zero crossing up by ten times that in kelvin.
	fieldVm, radiusM := 1e6, 5e-8
	shift := 4 * Faraday * fieldVm * radiusM / 1000

	tempK, found, err := ev.Crossover(rec, fieldVm, radiusM, rec.TempRange)
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 1000+shift/0.1, tempK, 0.5)
}

func TestCrossover_NoCrossing(t *testing.T) {
	ev := New(Options{})
	rec := testRecord() // stays far below zero over the whole range

	_, found, err := ev.Crossover(rec, 0, 0, model.TempRange{Min: 300, Max: 2000})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCrossover_InvalidRange(t *testing.T) {
	ev := New(Options{})
	rec := testRecord()

	_, _, err := ev.Crossover(rec, 0, 0, model.TempRange{Min: 500, Max: 500})
	assert.Error(t, err)
}
