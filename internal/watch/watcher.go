// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ReloadMsg reports that the watched document changed on disk.
type ReloadMsg struct {
	Path string
}

// =============================================================================
// DOCUMENT WATCHER
// =============================================================================

// reloadInterval caps how often reloads are delivered. Editors that save via
// truncate-then-write or rename produce several events per save; one reload
// per interval is plenty for a document viewer.
const reloadInterval = 500 * time.Millisecond

// DocumentWatcher watches the currently viewed local file for changes.
//
// The watch is placed on the file's directory rather than the file itself:
// many editors save by writing a temp file and renaming it over the original,
// which would otherwise silently detach a file-level watch.
type DocumentWatcher struct {
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	reloads chan string

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	path string // absolute path of the watched file, "" when idle
	dir  string // directory currently added to the watcher
}

// NewDocumentWatcher creates a watcher with no file selected. Call SetPath
// once a document is open.
func NewDocumentWatcher() (*DocumentWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &DocumentWatcher{
		watcher: fw,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		reloads: make(chan string, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	go w.run()
	return w, nil
}

// SetPath switches the watcher to a new document. An empty path stops
// watching without closing the watcher.
func (w *DocumentWatcher) SetPath(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path == "" {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
			w.dir = ""
		}
		w.path = ""
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	if dir != w.dir {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		if err := w.watcher.Add(dir); err != nil {
			w.dir = ""
			w.path = ""
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.path = abs
	return nil
}

// WaitForChange returns a command that delivers the next ReloadMsg. The app
// model re-issues it after consuming each reload.
func (w *DocumentWatcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.reloads
		if !ok {
			return nil
		}
		return ReloadMsg{Path: path}
	}
}

// Close stops watching and releases resources.
func (w *DocumentWatcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// run consumes filesystem events until the watcher closes.
func (w *DocumentWatcher) run() {
	errors := w.watcher.Errors
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				close(w.reloads)
				return
			}
			w.handleEvent(ev)
		case _, ok := <-errors:
			if !ok {
				// Stop selecting on the closed channel; Events
				// closes right after and ends the loop.
				errors = nil
			}
		}
	}
}

// handleEvent forwards one reload for events touching the watched file,
// subject to the rate limit.
func (w *DocumentWatcher) handleEvent(ev fsnotify.Event) {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()

	if path == "" || filepath.Clean(ev.Name) != path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}
	if err := w.limiter.Wait(w.ctx); err != nil {
		return // closing
	}
	// A pending reload already covers this change.
	select {
	case w.reloads <- path:
	default:
	}
}
