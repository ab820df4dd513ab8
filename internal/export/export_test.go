package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

func exportRecord(name string, a float64) *model.CompoundRecord {
	return &model.CompoundRecord{
		Name:         name,
		Formula:      "TiO2",
		Element:      "Ti",
		Category:     model.CategoryOxide,
		Coefficients: model.Coefficients{a, 0.18, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4,
		PhononWork:   20,
	}
}

func TestBuildSeries(t *testing.T) {
	ev := thermo.New(thermo.Options{})

	req := Request{
		Records: []*model.CompoundRecord{
			exportRecord("A", -900),
			exportRecord("B", -1000),
			exportRecord("C", -1100),
		},
		Range:   model.TempRange{Min: 300, Max: 500},
		StepK:   100,
		Process: model.ProcessParameters{Field: 2e6, Radius: 5e-6},
	}

	series, err := BuildSeries(context.Background(), ev, req)
	require.NoError(t, err)
	require.Len(t, series, 3)

	// Order matches the request regardless of evaluation order.
	assert.Equal(t, "A", series[0].Name)
	assert.Equal(t, "B", series[1].Name)
	assert.Equal(t, "C", series[2].Name)
	for _, s := range series {
		assert.Len(t, s.Points, 3)
		assert.Equal(t, 2e6, s.FieldVm)
	}
}

func TestBuildSeries_Normalized(t *testing.T) {
	ev := thermo.New(thermo.Options{})

	alumina := exportRecord("Al2O3", -1117.3)
	alumina.Formula = "Al2O3"
	alumina.Element = "Al"

	req := Request{
		Records:   []*model.CompoundRecord{exportRecord("TiO2", -944.7), alumina},
		Range:     model.TempRange{Min: 300, Max: 500},
		StepK:     100,
		Normalize: thermo.NormalizePerMetal,
	}

	series, err := BuildSeries(context.Background(), ev, req)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, 1.0, series[0].Factor)
	assert.Equal(t, 0.75, series[1].Factor)
	assert.Equal(t, "kJ/mol Al", series[1].Unit)

	plain, err := BuildSeries(context.Background(), ev, Request{
		Records: []*model.CompoundRecord{alumina},
		Range:   model.TempRange{Min: 300, Max: 500},
		StepK:   100,
	})
	require.NoError(t, err)
	assert.InDelta(t, plain[0].Points[0].DGEq*0.75, series[1].Points[0].DGEq, 1e-9)
}

func TestBuildSeries_PropagatesError(t *testing.T) {
	ev := thermo.New(thermo.Options{})

	bad := exportRecord("Bad", 0)
	bad.Coefficients = model.Coefficients{}

	_, err := BuildSeries(context.Background(), ev, Request{
		Records: []*model.CompoundRecord{exportRecord("A", -900), bad},
		Range:   model.TempRange{Min: 300, Max: 500},
		StepK:   100,
	})
	assert.ErrorIs(t, err, model.ErrMissingCoefficients)
}

func TestWriteCSV(t *testing.T) {
	ev := thermo.New(thermo.Options{})

	series, err := BuildSeries(context.Background(), ev, Request{
		Records: []*model.CompoundRecord{exportRecord("TiO2", -944.7)},
		Range:   model.TempRange{Min: 300, Max: 500},
		StepK:   100,
		Process: model.ProcessParameters{Field: 2e6, Radius: 5e-6},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, series))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 samples

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "TiO2", rows[1][0])
	assert.Equal(t, "300.0", rows[1][2])
	assert.Equal(t, "26.9", rows[1][1]) // 300 K in Celsius
	assert.Equal(t, "2.00", rows[1][5]) // field in MV/m
	assert.Equal(t, "5.00", rows[1][6]) // radius in um
	assert.Equal(t, "false", rows[1][7])
}

func TestWriteXLSX(t *testing.T) {
	ev := thermo.New(thermo.Options{})

	series, err := BuildSeries(context.Background(), ev, Request{
		Records: []*model.CompoundRecord{
			exportRecord("TiO2", -944.7),
			exportRecord("Al2O3", -1117.3),
		},
		Range:   model.TempRange{Min: 300, Max: 500},
		StepK:   100,
		Process: model.ProcessParameters{Field: 2e6, Radius: 5e-6},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curves.xlsx")
	require.NoError(t, WriteXLSX(path, series))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 3) // summary + one per compound

	assert.Equal(t, "Summary", f.Sheets[0].Name)
	assert.Equal(t, "TiO2", f.Sheets[1].Name)
	assert.Equal(t, "Al2O3", f.Sheets[2].Name)
	assert.Len(t, f.Sheets[1].Rows, 4) // header + 3 samples
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "TiO2", sheetName("TiO2"))

	long := sheetName("a-compound-name-well-past-the-worksheet-limit")
	assert.LessOrEqual(t, len(long), 31)
}
