package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		loader, err := NewConfigLoader("")
		require.NoError(t, err)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, filepath.Join("data", "word_senses.json"), cfg.Tables.SenseTable)
		assert.Equal(t, uint(2), cfg.Datamuse.RetryAttempts)
	})

	t.Run("named but missing file is an error", func(t *testing.T) {
		loader, err := NewConfigLoader(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		_, err = loader.Load()
		require.Error(t, err)
	})

	t.Run("reads values from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`
server:
  port: 9000
tables:
  sense_table: /tmp/senses.json
`), 0o644))

		loader, err := NewConfigLoader(configFile)
		require.NoError(t, err)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "/tmp/senses.json", cfg.Tables.SenseTable)
		assert.Equal(t, filepath.Join("data", "multilingual_synsets.json"), cfg.Tables.SynsetTable)
	})

	t.Run("environment overrides endpoints", func(t *testing.T) {
		t.Setenv("DATAMUSE_BASE_URL", "http://localhost:9999")

		loader, err := NewConfigLoader("")
		require.NoError(t, err)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9999", cfg.Datamuse.BaseURL)
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("server:\n  port: -1\n"), 0o644))

		loader, err := NewConfigLoader(configFile)
		require.NoError(t, err)
		_, err = loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
