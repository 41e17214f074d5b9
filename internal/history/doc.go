// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists visited locations and bookmarks.
//
// Storage is a single SQLite database under the markview config directory.
// Each visit is one row; repeat visits to the same location bump it to the
// top rather than accumulating duplicates, and the table is pruned to the
// configured limit on insert.
package history
