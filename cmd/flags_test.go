package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasma-forge/ellingham-cli/internal/config"
)

func TestFieldRadiusFlags(t *testing.T) {
	cfg = &config.Config{
		Process: config.ProcessConfig{FieldVm: 2e6, RadiusM: 5e-6},
	}

	c := &cobra.Command{}
	c.Flags().Float64("field", 0, "")
	c.Flags().Float64("radius", 0, "")

	// Unset flags fall back to the configured process defaults.
	fieldMV, radiusUm := fieldRadiusFlags(c)
	assert.Equal(t, 2.0, fieldMV)
	assert.Equal(t, 5.0, radiusUm)

	// Explicit flags win.
	require.NoError(t, c.Flags().Set("field", "3"))
	require.NoError(t, c.Flags().Set("radius", "10"))
	fieldMV, radiusUm = fieldRadiusFlags(c)
	assert.Equal(t, 3.0, fieldMV)
	assert.Equal(t, 10.0, radiusUm)
}
