package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("jsonc", func(t *testing.T) {
		path := writeConfig(t, `{
			// fixed width fields
			"bytes": 4,
			/* structured output */
			"output": "yaml",
			"logLevel": "debug",
		}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Config{Bytes: 4, Output: OutputYAML, LogLevel: "debug"}, cfg)

		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, slog.LevelDebug, level)
	})

	t.Run("partial", func(t *testing.T) {
		path := writeConfig(t, `{"bytes": 2}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Bytes)
		require.Equal(t, OutputHex, cfg.Output)
		require.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))
		require.Error(t, err)
		require.True(t, errors.Is(err, fs.ErrNotExist))
		require.Equal(t, Default(), cfg)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"bytes": "four"}`))
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}

func TestValidate(t *testing.T) {
	type TC struct {
		name string
		cfg  Config
		ok   bool
	}

	tcs := []TC{
		{name: "default", cfg: Default(), ok: true},
		{name: "yaml", cfg: Config{Output: OutputYAML, LogLevel: "info"}, ok: true},
		{name: "negative", cfg: Config{Bytes: -1, Output: OutputHex, LogLevel: "warn"}},
		{name: "output", cfg: Config{Output: "xml", LogLevel: "warn"}},
		{name: "level", cfg: Config{Output: OutputHex, LogLevel: "loud"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.Equal(t, filepath.Join(dir, "bcd", "config.jsonc"), DefaultPath())
}
