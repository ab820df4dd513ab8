package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		formula string
		counts  map[string]int
		order   []string
	}{
		{"TiO2", map[string]int{"Ti": 1, "O": 2}, []string{"Ti", "O"}},
		{"Al2O3", map[string]int{"Al": 2, "O": 3}, []string{"Al", "O"}},
		{"Cu2O", map[string]int{"Cu": 2, "O": 1}, []string{"Cu", "O"}},
		{"NbO", map[string]int{"Nb": 1, "O": 1}, []string{"Nb", "O"}},
		{"W", map[string]int{"W": 1}, []string{"W"}},
		{"CH4", map[string]int{"C": 1, "H": 4}, []string{"C", "H"}},
		{"Nb2O5", map[string]int{"Nb": 2, "O": 5}, []string{"Nb", "O"}},
		{"TiCl4", map[string]int{"Ti": 1, "Cl": 4}, []string{"Ti", "Cl"}},
	}
	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			st, err := ParseFormula(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.counts, st.Counts)
			assert.Equal(t, tt.order, st.Order)
		})
	}
}

func TestParseFormula_Invalid(t *testing.T) {
	for _, formula := range []string{"", "tiO2", "Ti-O2", "Ti O2", "2TiO", "Ti(OH)2"} {
		_, err := ParseFormula(formula)
		assert.ErrorIs(t, err, ErrUnparsableFormula, "formula %q", formula)
	}
}

func TestStoichiometry(t *testing.T) {
	st, err := ParseFormula("Al2O3")
	require.NoError(t, err)

	assert.Equal(t, 2, st.MetalAtoms())
	assert.Equal(t, "Al", st.Metal())
	assert.Equal(t, 3, st.CountOf("O"))
	assert.Equal(t, 0, st.CountOf("N"))
}

func TestStoichiometry_NonMetalOnly(t *testing.T) {
	st, err := ParseFormula("CH4")
	require.NoError(t, err)

	assert.Equal(t, 0, st.MetalAtoms())
	assert.Equal(t, "", st.Metal())
}
