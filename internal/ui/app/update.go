// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/markview-tui/internal/commands"
	"github.com/jeranaias/markview-tui/internal/detect"
	"github.com/jeranaias/markview-tui/internal/watch"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the single message dispatcher for the application.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// ---- omnibox and command notifications ----

	case commands.QuitMsg:
		return m, tea.Quit

	case commands.OpenLocalFileMsg:
		m.setStatus(fmt.Sprintf("Opening %s...", msg.Path), false)
		return m, m.loadFile(msg.Path, false)

	case commands.OpenRemoteMsg:
		m.setStatus(fmt.Sprintf("Fetching %s...", msg.URL), false)
		return m, m.fetchRemote(msg.URL)

	case commands.ChdirMsg:
		return m.chdir(msg.Target)

	case commands.ShowAboutMsg:
		m.showAbout = true
		m.showHelp = false
		return m, nil

	case commands.ShowContentsMsg:
		return m.showContents()

	case commands.ShowHistoryMsg:
		return m, m.loadHistory()

	case commands.ShowLocalFilesMsg:
		m.pane = paneLocal
		m.focus = focusPane
		return m, m.picker.Init()

	// ---- asynchronous results ----

	case documentLoadedMsg:
		return m.documentLoaded(msg)

	case loadFailedMsg:
		m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.location, msg.err), true)
		return m, nil

	case historyLoadedMsg:
		return m.historyLoaded(msg)

	case bookmarksLoadedMsg:
		return m.bookmarksLoaded(msg)

	case bookmarkSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not save bookmark: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Bookmarked as %s", msg.name), false)
		}
		return m, nil

	case bookmarkRemovedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not remove bookmark: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Removed bookmark %s", msg.name), false)
		if m.pane == paneBookmarks {
			return m, m.loadBookmarks()
		}
		return m, nil

	case watch.ReloadMsg:
		return m, tea.Batch(m.loadFile(msg.Path, true), m.watcher.WaitForChange())
	}

	return m.updateFocused(msg)
}

func (m Model) resize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.omnibox.SetWidth(msg.Width)
	m.help.SetWidth(msg.Width - 4)

	viewerWidth := msg.Width
	if m.pane != paneNone {
		viewerWidth -= paneWidth
	}
	m.viewer.SetSize(viewerWidth, m.mainHeight())
	m.picker.Height = m.mainHeight() - 2
	return m
}

// mainHeight is the height left for the document area: everything except the
// omnibox (input plus border) and the status line.
func (m Model) mainHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "f1":
		m.showHelp = !m.showHelp
		m.showAbout = false
		return m, nil
	}

	// Overlays swallow everything else; esc or enter dismisses.
	if m.showHelp || m.showAbout {
		switch msg.String() {
		case "esc", "enter", "q":
			m.showHelp = false
			m.showAbout = false
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.pane != paneNone {
			return m.closePane(), nil
		}
		m.focus = focusOmnibox
		return m, m.omnibox.Focus()

	case "tab":
		return m.cycleFocus()

	case "ctrl+r":
		if loc := m.viewer.Location(); loc != "" && !detect.IsLikelyURL(loc) {
			return m, m.loadFile(loc, true)
		}
		return m, nil

	case "ctrl+b":
		return m, m.loadBookmarks()

	case "ctrl+d":
		return m.bookmarkCurrent()
	}

	switch m.focus {
	case focusOmnibox:
		if msg.String() == "enter" {
			cmd, handled := m.omnibox.Submit()
			if handled {
				return m, cmd
			}
			// The entry named something that exists but cannot be
			// viewed. Nothing was emitted; let the key fall through
			// to the document below.
			m.viewer, cmd = m.viewer.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.omnibox, cmd = m.omnibox.Update(msg)
		return m, cmd

	case focusPane:
		return m.handlePaneKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) cycleFocus() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusOmnibox:
		m.omnibox.Blur()
		m.focus = focusViewer
		return m, nil
	case focusViewer:
		if m.pane != paneNone {
			m.focus = focusPane
			return m, nil
		}
		m.focus = focusOmnibox
		return m, m.omnibox.Focus()
	default:
		m.focus = focusOmnibox
		return m, m.omnibox.Focus()
	}
}

// updateFocused forwards a message to the focused component. The omnibox
// must see non-key messages while focused or its cursor never blinks.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusOmnibox:
		m.omnibox, cmd = m.omnibox.Update(msg)
	case focusViewer:
		m.viewer, cmd = m.viewer.Update(msg)
	case focusPane:
		if m.pane == paneLocal {
			return m.updatePicker(msg)
		}
	}
	return m, cmd
}

// =============================================================================
// PANES
// =============================================================================

func (m Model) closePane() Model {
	m.pane = paneNone
	m.items = nil
	m.selected = 0
	m.focus = focusOmnibox
	m.viewer.SetSize(m.width, m.mainHeight())
	return m
}

func (m Model) openPane(kind paneKind) Model {
	m.pane = kind
	m.selected = 0
	m.focus = focusPane
	m.viewer.SetSize(m.width-paneWidth, m.mainHeight())
	return m
}

func (m Model) showContents() (tea.Model, tea.Cmd) {
	headings := m.viewer.Headings()
	if len(headings) == 0 {
		m.setStatus("The current document has no headings", true)
		return m, nil
	}
	items := make([]paneItem, 0, len(headings))
	for _, h := range headings {
		indent := ""
		for i := 1; i < h.Level; i++ {
			indent += "  "
		}
		items = append(items, paneItem{label: indent + h.Text, line: h.Line})
	}
	m = m.openPane(paneContents)
	m.items = items
	return m, nil
}

func (m Model) historyLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Could not read history: %v", msg.err), true)
		return m, nil
	}
	if len(msg.entries) == 0 {
		m.setStatus("No history yet", false)
		return m, nil
	}
	items := make([]paneItem, 0, len(msg.entries))
	for _, e := range msg.entries {
		meta := e.VisitedAt.Format("2006-01-02 15:04")
		items = append(items, paneItem{label: e.Location, meta: meta, open: e.Location})
	}
	m = m.openPane(paneHistory)
	m.items = items
	return m, nil
}

func (m Model) bookmarksLoaded(msg bookmarksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Could not read bookmarks: %v", msg.err), true)
		return m, nil
	}
	if len(msg.bookmarks) == 0 {
		m.setStatus("No bookmarks yet", false)
		if m.pane == paneBookmarks {
			m = m.closePane()
		}
		return m, nil
	}
	items := make([]paneItem, 0, len(msg.bookmarks))
	for _, b := range msg.bookmarks {
		items = append(items, paneItem{label: b.Name, meta: b.Location, open: b.Location})
	}
	m = m.openPane(paneBookmarks)
	m.items = items
	return m, nil
}

// bookmarkCurrent saves the viewed document under a name derived from its
// location.
func (m Model) bookmarkCurrent() (tea.Model, tea.Cmd) {
	location := m.viewer.Location()
	if location == "" {
		m.setStatus("Nothing to bookmark", true)
		return m, nil
	}
	if m.store == nil {
		m.setStatus("Bookmarks are unavailable", true)
		return m, nil
	}
	remote := detect.IsLikelyURL(location)
	return m, m.saveBookmark(bookmarkName(location), location, remote)
}

// bookmarkName derives a default bookmark name: the final path element for
// local files, the last URL segment (or the host) for remote documents.
func bookmarkName(location string) string {
	if detect.IsLikelyURL(location) {
		if u, err := url.Parse(location); err == nil {
			if base := path.Base(u.Path); base != "." && base != "/" {
				return base
			}
			return u.Host
		}
	}
	return filepath.Base(detect.ExpandHome(location))
}

func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pane == paneLocal {
		return m.updatePicker(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "enter":
		if m.selected >= len(m.items) {
			return m, nil
		}
		item := m.items[m.selected]
		if item.open != "" {
			m = m.closePane()
			return m, m.openLocation(item.open)
		}
		m.viewer.ScrollToLine(item.line)
		m.focus = focusViewer

	case "x", "delete":
		if m.pane == paneBookmarks && m.selected < len(m.items) {
			return m, m.removeBookmark(m.items[m.selected].label)
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m = m.closePane()
		return m, tea.Batch(cmd, m.loadFile(path, false))
	}
	return m, cmd
}

func (m Model) chdir(target string) (tea.Model, tea.Cmd) {
	if target == "" {
		m.setStatus("chdir needs a directory", true)
		return m, nil
	}
	dir := detect.ExpandHome(target)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		m.setStatus(fmt.Sprintf("Not a directory: %s", target), true)
		return m, nil
	}
	m.picker.CurrentDirectory = dir
	m = m.openPane(paneLocal)
	m.setStatus(fmt.Sprintf("Browsing %s", dir), false)
	return m, m.picker.Init()
}

// =============================================================================
// DOCUMENT LIFECYCLE
// =============================================================================

func (m Model) documentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	m.viewer.SetDocument(msg.location, msg.source)
	m.omnibox.SetVisiting(msg.location)

	if msg.reload {
		m.setStatus(fmt.Sprintf("Reloaded %s", msg.location), false)
		return m, nil
	}

	m.setStatus(fmt.Sprintf("Viewing %s", msg.location), false)
	m.recordVisit(msg.location, msg.remote)

	if m.watcher != nil {
		if msg.remote {
			_ = m.watcher.SetPath("")
		} else {
			abs, err := filepath.Abs(detect.ExpandHome(msg.location))
			if err == nil {
				_ = m.watcher.SetPath(abs)
			}
		}
	}
	return m, nil
}
