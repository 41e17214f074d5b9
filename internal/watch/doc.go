// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch reloads the viewed document when it changes on disk.
//
// The watcher follows one local file at a time. Events are rate limited so
// an editor that writes in bursts produces a single reload, and reloads are
// delivered as bubbletea messages via WaitForChange.
package watch
