// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/markview-tui/internal/commands"
	"github.com/jeranaias/markview-tui/internal/config"
	"github.com/jeranaias/markview-tui/internal/detect"
	"github.com/jeranaias/markview-tui/internal/history"
	"github.com/jeranaias/markview-tui/internal/ui/components"
	"github.com/jeranaias/markview-tui/internal/ui/styles"
	"github.com/jeranaias/markview-tui/internal/watch"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	appName    = "markview"
	appVersion = "0.4.0"
	appHome    = "https://github.com/jeranaias/markview-tui"

	// maxRemoteSize caps how much of a remote document is read.
	maxRemoteSize = 10 << 20

	fetchTimeout = 15 * time.Second

	paneWidth = 34
)

// =============================================================================
// MODEL
// =============================================================================

type focusArea int

const (
	focusOmnibox focusArea = iota
	focusViewer
	focusPane
)

type paneKind int

const (
	paneNone paneKind = iota
	paneHistory
	paneContents
	paneBookmarks
	paneLocal
)

// paneItem is one selectable row in the history or contents pane.
type paneItem struct {
	label string
	meta  string
	open  string // location to open on selection; empty for heading jumps
	line  int    // source line for heading jumps
}

// Model is the top-level application model.
type Model struct {
	cfg      *config.Config
	theme    *styles.Theme
	registry *commands.Registry

	omnibox *components.Omnibox
	viewer  *components.Viewer
	help    *components.Help
	picker  filepicker.Model

	store   *history.Store         // nil when the history store failed to open
	watcher *watch.DocumentWatcher // nil when watching is disabled
	client  *http.Client

	focus    focusArea
	pane     paneKind
	items    []paneItem
	selected int

	showHelp  bool
	showAbout bool

	status    string
	statusErr bool

	initial string
	width   int
	height  int
	ready   bool
}

// New assembles the application. store and watcher may be nil; the features
// they back degrade quietly. initial is an optional location to open at
// startup.
func New(cfg *config.Config, store *history.Store, watcher *watch.DocumentWatcher, initial string) Model {
	theme := styles.NewTheme()
	registry := commands.NewRegistry()

	picker := filepicker.New()
	picker.AllowedTypes = []string{".md", ".markdown", ".mdown", ".txt"}
	picker.CurrentDirectory = startDir(cfg)
	picker.ShowHidden = false

	return Model{
		cfg:      cfg,
		theme:    theme,
		registry: registry,
		omnibox:  components.NewOmnibox(registry, detect.OSProbe{}, detect.IsLikelyURL, theme),
		viewer:   components.NewViewer(cfg.Theme, theme),
		help:     components.NewHelp(registry, theme),
		picker:   picker,
		store:    store,
		watcher:  watcher,
		client:   &http.Client{Timeout: fetchTimeout},
		status:   "Ready",
		initial:  initial,
	}
}

func startDir(cfg *config.Config) string {
	if cfg.StartDir != "" {
		return detect.ExpandHome(cfg.StartDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Init starts the omnibox cursor, arms the file watcher, and opens the
// initial location when one was given.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.omnibox.Focus()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.WaitForChange())
	}
	if m.initial != "" {
		cmds = append(cmds, m.openLocation(m.initial))
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

// documentLoadedMsg carries a document that was read successfully.
type documentLoadedMsg struct {
	location string
	source   string
	remote   bool
	reload   bool // set when the read was triggered by the file watcher
}

// loadFailedMsg reports a failed open.
type loadFailedMsg struct {
	location string
	err      error
}

// historyLoadedMsg carries the rows for the history pane.
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

// bookmarksLoadedMsg carries the rows for the bookmarks pane.
type bookmarksLoadedMsg struct {
	bookmarks []history.Bookmark
	err       error
}

// bookmarkSavedMsg reports the result of saving a bookmark.
type bookmarkSavedMsg struct {
	name string
	err  error
}

// bookmarkRemovedMsg reports the result of removing a bookmark.
type bookmarkRemovedMsg struct {
	name string
	err  error
}

// =============================================================================
// SIDE-EFFECT COMMANDS
// =============================================================================

// openLocation routes a startup or pane-selected location the same way the
// omnibox would: URLs are fetched, everything else is read from disk.
func (m Model) openLocation(location string) tea.Cmd {
	if detect.IsLikelyURL(location) {
		return m.fetchRemote(location)
	}
	return m.loadFile(location, false)
}

// loadFile reads a local markdown file off the UI goroutine.
func (m Model) loadFile(path string, reload bool) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(detect.ExpandHome(path))
		if err != nil {
			return loadFailedMsg{location: path, err: err}
		}
		return documentLoadedMsg{location: path, source: string(data), reload: reload}
	}
}

// fetchRemote downloads a remote document.
func (m Model) fetchRemote(rawURL string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Get(rawURL)
		if err != nil {
			return loadFailedMsg{location: rawURL, err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return loadFailedMsg{
				location: rawURL,
				err:      fmt.Errorf("server returned %s", resp.Status),
			}
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
		if err != nil {
			return loadFailedMsg{location: rawURL, err: err}
		}
		return documentLoadedMsg{location: rawURL, source: string(data), remote: true}
	}
}

// loadHistory reads recent visits for the history pane.
func (m Model) loadHistory() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{err: fmt.Errorf("history is unavailable")}
		}
		entries, err := store.Recent(100)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// loadBookmarks reads the saved bookmarks for the bookmarks pane.
func (m Model) loadBookmarks() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return bookmarksLoadedMsg{err: fmt.Errorf("bookmarks are unavailable")}
		}
		bookmarks, err := store.Bookmarks()
		return bookmarksLoadedMsg{bookmarks: bookmarks, err: err}
	}
}

// saveBookmark persists a bookmark for a location.
func (m Model) saveBookmark(name, location string, remote bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return bookmarkSavedMsg{name: name, err: fmt.Errorf("bookmarks are unavailable")}
		}
		return bookmarkSavedMsg{name: name, err: store.AddBookmark(name, location, remote)}
	}
}

// removeBookmark deletes a bookmark by name.
func (m Model) removeBookmark(name string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return bookmarkRemovedMsg{name: name, err: fmt.Errorf("bookmarks are unavailable")}
		}
		return bookmarkRemovedMsg{name: name, err: store.RemoveBookmark(name)}
	}
}

// recordVisit persists a visit, best effort.
func (m Model) recordVisit(location string, remote bool) {
	if m.store == nil {
		return
	}
	_ = m.store.Add(location, remote)
}
