// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and saving for markview.
//
// Configuration is TOML at ~/.markview/config.toml with built-in defaults
// and environment variable overrides (MARKVIEW_*). Saving is atomic so a
// crash mid-write never leaves a corrupt file behind.
package config
