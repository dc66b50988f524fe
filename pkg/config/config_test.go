package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8480", cfg.Server.Address)
	assert.Equal(t, 100, cfg.Server.RequestsPerSecond)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Table.File)
	assert.False(t, cfg.Table.Strict)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versicle.yaml")
	data := `
server:
  address: ":9000"
table:
  file: /etc/versicle/table.yaml
  strict: true
wire:
  letter_sep: " + "
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "/etc/versicle/table.yaml", cfg.Table.File)
	assert.True(t, cfg.Table.Strict)
	assert.Equal(t, " + ", cfg.Wire.LetterSep)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VERSICLE_ADDR", ":7000")
	t.Setenv("VERSICLE_TABLE_STRICT", "true")
	t.Setenv("VERSICLE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.True(t, cfg.Table.Strict)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/versicle.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versicle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
