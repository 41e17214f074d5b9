// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, 250, cfg.HistoryLimit)
	assert.True(t, cfg.WatchFiles)
	assert.Empty(t, cfg.StartDir)
}

func TestSaveAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{
		Theme:        "dark",
		StartDir:     "/tmp/docs",
		HistoryLimit: 10,
		WatchFiles:   false,
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = [broken"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MARKVIEW_THEME", "light")
	t.Setenv("MARKVIEW_START_DIR", "/srv/docs")
	t.Setenv("MARKVIEW_HISTORY_LIMIT", "42")
	t.Setenv("MARKVIEW_WATCH", "false")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Default().Save(path))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "/srv/docs", cfg.StartDir)
	assert.Equal(t, 42, cfg.HistoryLimit)
	assert.False(t, cfg.WatchFiles)
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("MARKVIEW_HISTORY_LIMIT", "lots")
	t.Setenv("MARKVIEW_WATCH", "sometimes")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Default().Save(path))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default().HistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, Default().WatchFiles, cfg.WatchFiles)
}

func TestLoadWithoutHomeClampsEnv(t *testing.T) {
	// With no resolvable home, Load runs on defaults plus env; clamping
	// still applies on that path.
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("MARKVIEW_HISTORY_LIMIT", "-5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().HistoryLimit, cfg.HistoryLimit)
}

func TestNormalizeClampsHistoryLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("history_limit = -5\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default().HistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, "auto", cfg.Theme)
}
