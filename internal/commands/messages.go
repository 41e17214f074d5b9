// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are the omnibox's entire outbound surface. Command handlers
// and the omnibox submit path emit them; the application model consumes them.
// Each submission produces at most one message.

// OpenLocalFileMsg asks the application to view a local markdown file.
//
// Unresolved marks the fallback case: the path was never confirmed to exist,
// and the viewer is expected to surface the resulting not-found error so the
// user can correct the input.
type OpenLocalFileMsg struct {
	Path       string
	Unresolved bool
}

// OpenRemoteMsg asks the application to fetch and view a remote document.
type OpenRemoteMsg struct {
	URL string
}

// ChdirMsg asks the application to re-root the local files pane.
type ChdirMsg struct {
	Target string
}

// ShowAboutMsg asks the application to show the about overlay.
type ShowAboutMsg struct{}

// ShowContentsMsg asks the application to show the table of contents.
type ShowContentsMsg struct{}

// ShowHistoryMsg asks the application to show the history pane.
type ShowHistoryMsg struct{}

// ShowLocalFilesMsg asks the application to show the local files pane.
type ShowLocalFilesMsg struct{}

// QuitMsg asks the application to exit.
type QuitMsg struct{}
