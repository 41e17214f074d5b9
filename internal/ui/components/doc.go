// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the markview TUI.
//
// The omnibox is the interesting one: it is the single-line command and
// location entry at the top of the screen, and its submit path is where
// classification and command dispatch meet. The viewer, help overlay, and
// code block renderer are presentation around it.
package components
