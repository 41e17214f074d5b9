// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the UI components into the top-level bubbletea model.
//
// The model owns all side effects. Components below it (omnibox, viewer,
// panes) only emit notification messages; this package is where those
// messages turn into file reads, HTTP fetches, directory changes, history
// writes, and quitting.
package app
