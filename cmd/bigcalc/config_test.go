package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bigcalc.toml")
		require.NoError(t, os.WriteFile(path, []byte("precision = 12\nrounding = \"floor\"\n"), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 12, cfg.Precision)
		require.Equal(t, "floor", cfg.Rounding)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bigcalc.toml")
		require.NoError(t, os.WriteFile(path, []byte("precision = 7\n"), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Precision)
		require.Equal(t, "half-even", cfg.Rounding)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
	})
}
