// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detect supplies the environment probes the classifier depends on.
//
// The classifier in internal/router is pure; the two capabilities it needs
// are provided here: a URL-likelihood predicate and a filesystem probe backed
// by os.Stat. Keeping them in their own package keeps the classifier testable
// against fakes.
//
// # Key Functions
//
//   - IsLikelyURL: does a string look like an http(s) locator?
//   - OSProbe: router.FilesystemProbe over the real filesystem
//   - ExpandHome: resolve ~-relative paths against the user's home
package detect
