// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/markview-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete markview configuration.
type Config struct {
	// Theme is the glamour style used to render markdown:
	// "auto", "dark", "light", "notty", or a named style.
	Theme string `toml:"theme"`

	// StartDir is the initial root of the local files pane.
	// Empty means the current working directory.
	StartDir string `toml:"start_dir"`

	// HistoryLimit caps how many visited locations are retained.
	HistoryLimit int `toml:"history_limit"`

	// WatchFiles enables reloading the viewed document when it changes
	// on disk.
	WatchFiles bool `toml:"watch_files"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:        "auto",
		StartDir:     "",
		HistoryLimit: 250,
		WatchFiles:   true,
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the markview configuration directory (~/.markview).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".markview"), nil
}

// Path returns the configuration file path inside Dir.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file, falling back to defaults when it does
// not exist, then applies environment overrides. A missing file is normal on
// first run and is not an error; a malformed file is.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		// No resolvable home; run on defaults plus env.
		applyEnv(cfg)
		cfg.normalize()
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.normalize()
	return cfg, nil
}

// LoadFrom reads configuration from an explicit path. Used by tests and the
// --config flag. The file must exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	applyEnv(cfg)
	cfg.normalize()
	return cfg, nil
}

// applyEnv applies MARKVIEW_* environment overrides on top of whatever the
// file provided.
func applyEnv(cfg *Config) {
	if theme := os.Getenv("MARKVIEW_THEME"); theme != "" {
		cfg.Theme = theme
	}
	if dir := os.Getenv("MARKVIEW_START_DIR"); dir != "" {
		cfg.StartDir = dir
	}
	if limit := os.Getenv("MARKVIEW_HISTORY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			cfg.HistoryLimit = n
		}
	}
	if watch := os.Getenv("MARKVIEW_WATCH"); watch != "" {
		if b, err := strconv.ParseBool(watch); err == nil {
			cfg.WatchFiles = b
		}
	}
}

// normalize clamps values into usable ranges.
func (c *Config) normalize() {
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = Default().HistoryLimit
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to path atomically.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
