// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router classifies omnibox input and routes it to an outcome.
//
// A single line of user input can name a remote document, a local file or
// directory, a (possibly abbreviated) viewer command, or nothing recognizable
// at all. The classifier decides which, in a fixed priority order, and the
// result is a closed set of Outcome variants that the omnibox widget turns
// into notifications for the rest of the application.
//
// # Key Types
//
//   - Outcome: closed sum over the six classification results
//   - Classifier: the classification function with its two probes
//   - FilesystemProbe: exists/is-file/is-directory capability
//   - CommandResolver: alias-aware command lookup
//
// # Usage
//
// Classify a submitted line:
//
//	c := router.Classifier{Probe: probe, URLLikely: detect.IsLikelyURL, Commands: registry}
//	switch out := c.Classify(input).(type) {
//	case router.RemoteTarget:
//	    // open out.URL
//	case router.Command:
//	    // dispatch out.Name with out.Args
//	}
//
// Classification never returns an error: a path that does not exist is a
// normal outcome, not a failure.
package router
