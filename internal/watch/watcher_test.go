// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitReload waits for a reload message with a generous timeout; fsnotify
// delivery latency varies by platform.
func waitReload(t *testing.T, w *DocumentWatcher) (string, bool) {
	t.Helper()
	select {
	case path, ok := <-w.reloads:
		return path, ok
	case <-time.After(3 * time.Second):
		return "", false
	}
}

func TestReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# one\n"), 0o644))

	w, err := NewDocumentWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.SetPath(path))
	require.NoError(t, os.WriteFile(path, []byte("# two\n"), 0o644))

	got, ok := waitReload(t, w)
	require.True(t, ok, "expected a reload")
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, got)
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "doc.md")
	sibling := filepath.Join(dir, "other.md")
	require.NoError(t, os.WriteFile(watched, []byte("x"), 0o644))

	w, err := NewDocumentWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.SetPath(watched))

	require.NoError(t, os.WriteFile(sibling, []byte("y"), 0o644))

	select {
	case path := <-w.reloads:
		t.Fatalf("unexpected reload for %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSetPathEmptyStopsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := NewDocumentWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.SetPath(path))
	require.NoError(t, w.SetPath(""))

	require.NoError(t, os.WriteFile(path, []byte("y"), 0o644))

	select {
	case path := <-w.reloads:
		t.Fatalf("unexpected reload for %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSetPathMissingDirectory(t *testing.T) {
	w, err := NewDocumentWatcher()
	require.NoError(t, err)
	defer w.Close()

	err = w.SetPath(filepath.Join(t.TempDir(), "gone", "doc.md"))
	assert.Error(t, err)
}

func TestCloseEndsWaitForChange(t *testing.T) {
	w, err := NewDocumentWatcher()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Returns nil once the reload channel closes.
		assert.Nil(t, w.WaitForChange()())
	}()

	require.NoError(t, w.Close())

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("WaitForChange did not return after Close")
	}
}
