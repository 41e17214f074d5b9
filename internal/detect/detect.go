// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/markview-tui/internal/router"
)

// =============================================================================
// URL LIKELIHOOD
// =============================================================================

// IsLikelyURL reports whether the input looks like a network locator worth
// handing to the remote fetcher: an absolute http or https URL with a host.
//
// This is a heuristic, not validation. A string that passes here can still
// turn out to be unfetchable; that failure belongs to the consumer.
func IsLikelyURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	}
	return false
}

// =============================================================================
// FILESYSTEM PROBE
// =============================================================================

// OSProbe is the real-filesystem implementation of router.FilesystemProbe.
// Probing is one stat call; symlinks are followed, so a link to nowhere
// reports as missing.
type OSProbe struct{}

// Probe reports what kind of entry, if any, the path names. Relative,
// absolute, and ~-relative forms are all accepted.
func (OSProbe) Probe(path string) router.PathKind {
	info, err := os.Stat(ExpandHome(path))
	if err != nil {
		// Nonexistence is a normal outcome. Other stat failures
		// (permission, bad name) classify the same way: not a usable
		// filesystem entry.
		return router.PathMissing
	}
	switch {
	case info.Mode().IsRegular():
		return router.PathFile
	case info.IsDir():
		return router.PathDir
	default:
		return router.PathOther
	}
}

// =============================================================================
// PATH EXPANSION
// =============================================================================

// ExpandHome resolves "~" and "~/..." against the current user's home
// directory. Anything else, including "~user" forms, is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
