package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "custom_compounds.db", cfg.Store.DSN)
	assert.Equal(t, 300.0, cfg.Eval.TempMinK)
	assert.Equal(t, 2400.0, cfg.Eval.TempMaxK)
	assert.Equal(t, 10.0, cfg.Eval.StepK)
	assert.Equal(t, 50.0, cfg.Eval.LogRatioBound)
	assert.Equal(t, -50.0, cfg.Eval.HighlyFavorableBelow)
	assert.Equal(t, 0.0, cfg.Eval.FavorableBelow)
	assert.Equal(t, 50.0, cfg.Eval.MarginalBelow)
	assert.Equal(t, "N2_H2_25", cfg.Process.GasMix)
	assert.Equal(t, 5e-6, cfg.Process.RadiusM)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ELLINGHAM_STORE_DRIVER", "postgres")
	t.Setenv("ELLINGHAM_STORE_DSN", "postgres://localhost/ellingham")
	t.Setenv("ELLINGHAM_LOG_LEVEL", "debug")
	t.Setenv("ELLINGHAM_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/ellingham", cfg.Store.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	doc := `store:
  driver: json
  path: /var/lib/ellingham/custom.json
eval:
  step_k: 25
process:
  gas_mix: Ar_H2_5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(doc), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Store.Driver)
	assert.Equal(t, "/var/lib/ellingham/custom.json", cfg.Store.Path)
	assert.Equal(t, 25.0, cfg.Eval.StepK)
	assert.Equal(t, "Ar_H2_5", cfg.Process.GasMix)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2400.0, cfg.Eval.TempMaxK)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "noisy", Format: "json"}))
}
