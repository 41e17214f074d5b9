// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"strings"
	"unicode"
)

// ============================================================================
// CLASSIFIER
// ============================================================================

// Classifier turns one submitted input line into an Outcome.
//
// Both capabilities are supplied by the caller: the filesystem probe and the
// URL-likelihood predicate. Commands is consulted last, so a file on disk
// named "q" wins over the quit command. The Classifier holds no mutable
// state; the same input against an unchanged filesystem classifies the same
// way every time.
type Classifier struct {
	// Probe reports whether a path exists and what it is.
	Probe FilesystemProbe

	// URLLikely reports whether the input looks like a network locator.
	URLLikely func(string) bool

	// Commands resolves a lowercased leading token to a canonical command.
	Commands CommandResolver
}

// Classify classifies text, which the caller has already trimmed.
//
// Classification rules (in order of priority):
//  1. URL-likely input is a RemoteTarget, regardless of filesystem state.
//  2. An existing path is a LocalFile, LocalDirectory, or Unrepresentable
//     depending on what the probe reports.
//  3. A leading token that alias-resolves to a registered command is a
//     Command. Only the token is lowercased; the argument tail keeps the
//     case the user typed.
//  4. Everything else is an UnresolvedFilename.
//
// The ordering is deliberate policy, not an accident of implementation:
// locations beat lookalike commands, so classification must not be reordered.
func (c *Classifier) Classify(text string) Outcome {
	if c.URLLikely != nil && c.URLLikely(text) {
		return RemoteTarget{URL: text}
	}

	if c.Probe != nil {
		switch c.Probe.Probe(text) {
		case PathFile:
			return LocalFile{Path: text}
		case PathDir:
			return LocalDirectory{Path: text}
		case PathOther:
			return Unrepresentable{Path: text}
		}
	}

	token, args := splitCommand(text)
	if c.Commands != nil {
		if name, ok := c.Commands.Resolve(strings.ToLower(token)); ok {
			return Command{Name: name, Args: args}
		}
	}

	return UnresolvedFilename{Path: text}
}

// splitCommand splits text into its leading whitespace-delimited token and
// the remainder. The remainder has surrounding whitespace trimmed; internal
// whitespace and case are preserved. Input with no whitespace yields an
// empty remainder.
func splitCommand(text string) (token, args string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}
