// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), limit)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// visit records a location with a small delay so visit timestamps are
// strictly ordered.
func visit(t *testing.T, s *Store, location string, remote bool) {
	t.Helper()
	require.NoError(t, s.Add(location, remote))
	time.Sleep(2 * time.Millisecond)
}

func TestAddAndRecent(t *testing.T) {
	s := openTestStore(t, 10)

	visit(t, s, "./README.md", false)
	visit(t, s, "https://example.com/doc.md", true)
	visit(t, s, "./CHANGELOG.md", false)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Most recent first.
	assert.Equal(t, "./CHANGELOG.md", entries[0].Location)
	assert.Equal(t, "https://example.com/doc.md", entries[1].Location)
	assert.Equal(t, "./README.md", entries[2].Location)

	assert.True(t, entries[1].Remote)
	assert.False(t, entries[0].Remote)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].VisitedAt.IsZero())
}

func TestRevisitDeduplicates(t *testing.T) {
	s := openTestStore(t, 10)

	visit(t, s, "./a.md", false)
	visit(t, s, "./b.md", false)
	visit(t, s, "./a.md", false)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "./a.md", entries[0].Location)
	assert.Equal(t, "./b.md", entries[1].Location)
}

func TestPruneToLimit(t *testing.T) {
	s := openTestStore(t, 3)

	for _, loc := range []string{"one", "two", "three", "four", "five"} {
		visit(t, s, loc, false)
	}

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "five", entries[0].Location)
	assert.Equal(t, "three", entries[2].Location)
}

func TestBookmarks(t *testing.T) {
	s := openTestStore(t, 10)

	require.NoError(t, s.AddBookmark("readme", "./README.md", false))
	require.NoError(t, s.AddBookmark("docs", "https://example.com/doc.md", true))

	bookmarks, err := s.Bookmarks()
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "docs", bookmarks[0].Name)
	assert.Equal(t, "readme", bookmarks[1].Name)

	// Re-saving a name replaces the location.
	require.NoError(t, s.AddBookmark("readme", "./OTHER.md", false))
	bookmarks, err = s.Bookmarks()
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "./OTHER.md", bookmarks[1].Location)

	require.NoError(t, s.RemoveBookmark("docs"))
	assert.ErrorIs(t, s.RemoveBookmark("docs"), ErrNotFound)

	bookmarks, err = s.Bookmarks()
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}

func TestClosedStore(t *testing.T) {
	s := openTestStore(t, 10)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Add("x", false), ErrClosed)
	_, err := s.Recent(1)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Bookmarks()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpenRejectsBadLimit(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "history.db"), 0)
	assert.Error(t, err)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, 10)
	require.NoError(t, err)
	require.NoError(t, s.Add("./kept.md", false))
	require.NoError(t, s.Close())

	s, err = Open(path, 10)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "./kept.md", entries[0].Location)
}
