// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"strings"
	"testing"
)

// fakeResolver resolves the built-in viewer command set the way the command
// registry does: alias first, then the token itself.
type fakeResolver struct {
	aliases  map[string]string
	commands map[string]bool
}

func newFakeResolver() fakeResolver {
	return fakeResolver{
		aliases: map[string]string{
			"a":   "about",
			"c":   "contents",
			"cd":  "chdir",
			"h":   "history",
			"l":   "local",
			"toc": "contents",
			"q":   "quit",
		},
		commands: map[string]bool{
			"about": true, "contents": true, "chdir": true,
			"history": true, "local": true, "quit": true,
		},
	}
}

func (r fakeResolver) Resolve(token string) (string, bool) {
	if name, ok := r.aliases[token]; ok {
		return name, true
	}
	if r.commands[token] {
		return token, true
	}
	return "", false
}

// fakeProbe reports path kinds from a fixed map; anything absent is missing.
func fakeProbe(kinds map[string]PathKind) FilesystemProbe {
	return ProbeFunc(func(path string) PathKind {
		return kinds[path]
	})
}

func urlLikely(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func testClassifier(kinds map[string]PathKind) *Classifier {
	return &Classifier{
		Probe:     fakeProbe(kinds),
		URLLikely: urlLikely,
		Commands:  newFakeResolver(),
	}
}

// TestClassify covers the priority order and every outcome variant.
func TestClassify(t *testing.T) {
	kinds := map[string]PathKind{
		"./README.md":  PathFile,
		"/tmp":         PathDir,
		"/dev/null":    PathOther,
		"notes.socket": PathOther,
		"q":            PathMissing,
	}
	c := testClassifier(kinds)

	tests := []struct {
		name     string
		input    string
		expected Outcome
	}{
		// Rule 1: URL likelihood wins over everything else.
		{
			name:     "remote_url",
			input:    "https://example.com/readme.md",
			expected: RemoteTarget{URL: "https://example.com/readme.md"},
		},
		{
			name:     "remote_url_http",
			input:    "http://example.com/",
			expected: RemoteTarget{URL: "http://example.com/"},
		},

		// Rule 2: existing filesystem entries.
		{
			name:     "existing_file",
			input:    "./README.md",
			expected: LocalFile{Path: "./README.md"},
		},
		{
			name:     "existing_directory",
			input:    "/tmp",
			expected: LocalDirectory{Path: "/tmp"},
		},
		{
			name:     "special_file",
			input:    "/dev/null",
			expected: Unrepresentable{Path: "/dev/null"},
		},
		{
			name:     "socket_file",
			input:    "notes.socket",
			expected: Unrepresentable{Path: "notes.socket"},
		},

		// Rule 3: commands, canonical and aliased.
		{
			name:     "canonical_command",
			input:    "quit",
			expected: Command{Name: "quit", Args: ""},
		},
		{
			name:     "aliased_command",
			input:    "q",
			expected: Command{Name: "quit", Args: ""},
		},
		{
			name:     "uppercase_command",
			input:    "Q",
			expected: Command{Name: "quit", Args: ""},
		},
		{
			name:     "command_with_argument",
			input:    "cd /tmp",
			expected: Command{Name: "chdir", Args: "/tmp"},
		},
		{
			name:     "argument_case_preserved",
			input:    "cd /Tmp/Docs",
			expected: Command{Name: "chdir", Args: "/Tmp/Docs"},
		},
		{
			name:     "argument_whitespace_trimmed",
			input:    "cd   /tmp  ",
			expected: Command{Name: "chdir", Args: "/tmp"},
		},
		{
			name:     "toc_alias",
			input:    "toc",
			expected: Command{Name: "contents", Args: ""},
		},

		// Rule 4: the fallback.
		{
			name:     "unresolved_filename",
			input:    "not-a-real-file.md",
			expected: UnresolvedFilename{Path: "not-a-real-file.md"},
		},
		{
			name:     "unresolved_sentence",
			input:    "open sesame please",
			expected: UnresolvedFilename{Path: "open sesame please"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestClassifyURLBeatsFilesystem verifies rule 1 has top priority: a URL-like
// string classifies as remote even when a path of the same name exists.
func TestClassifyURLBeatsFilesystem(t *testing.T) {
	c := testClassifier(map[string]PathKind{
		"https://example.com/readme.md": PathFile,
	})
	got := c.Classify("https://example.com/readme.md")
	if _, ok := got.(RemoteTarget); !ok {
		t.Fatalf("expected RemoteTarget, got %#v", got)
	}
}

// TestClassifyFilesystemBeatsCommand verifies rule 2 outranks rule 3: an
// existing file named like a command is opened, not executed.
func TestClassifyFilesystemBeatsCommand(t *testing.T) {
	c := testClassifier(map[string]PathKind{"q": PathFile})
	got := c.Classify("q")
	if got != (LocalFile{Path: "q"}) {
		t.Fatalf("expected LocalFile{q}, got %#v", got)
	}
}

// TestClassifyAliasEquivalence verifies every alias classifies identically to
// its canonical command, argument tail included.
func TestClassifyAliasEquivalence(t *testing.T) {
	c := testClassifier(nil)
	resolver := newFakeResolver()

	for alias, canonical := range resolver.aliases {
		viaAlias := c.Classify(alias + " x")
		viaCanonical := c.Classify(canonical + " x")
		if viaAlias != viaCanonical {
			t.Errorf("alias %q: got %#v, canonical %q got %#v",
				alias, viaAlias, canonical, viaCanonical)
		}
	}
}

// TestClassifyIdempotent verifies classifying the same input twice against an
// unchanged filesystem yields identical outcomes.
func TestClassifyIdempotent(t *testing.T) {
	c := testClassifier(map[string]PathKind{"./README.md": PathFile})

	inputs := []string{
		"https://example.com/readme.md",
		"./README.md",
		"cd /tmp",
		"q",
		"not-a-real-file.md",
	}
	for _, input := range inputs {
		first := c.Classify(input)
		second := c.Classify(input)
		if first != second {
			t.Errorf("Classify(%q) not idempotent: %#v then %#v", input, first, second)
		}
	}
}

// TestClassifyNilCapabilities verifies a classifier with no probes still
// falls through to the filename fallback instead of panicking.
func TestClassifyNilCapabilities(t *testing.T) {
	c := &Classifier{}
	got := c.Classify("whatever")
	if got != (UnresolvedFilename{Path: "whatever"}) {
		t.Fatalf("expected UnresolvedFilename, got %#v", got)
	}
}

// TestSplitCommand pins down token/tail splitting behavior.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input string
		token string
		args  string
	}{
		{"quit", "quit", ""},
		{"cd /tmp", "cd", "/tmp"},
		{"cd  /tmp ", "cd", "/tmp"},
		{"cd some dir with spaces", "cd", "some dir with spaces"},
		{"cd\t/tmp", "cd", "/tmp"},
		{"", "", ""},
	}
	for _, tt := range tests {
		token, args := splitCommand(tt.input)
		if token != tt.token || args != tt.args {
			t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)",
				tt.input, token, args, tt.token, tt.args)
		}
	}
}

// TestPathKindString covers the enum's display names.
func TestPathKindString(t *testing.T) {
	tests := []struct {
		kind     PathKind
		expected string
	}{
		{PathMissing, "Missing"},
		{PathFile, "File"},
		{PathDir, "Dir"},
		{PathOther, "Other"},
		{PathKind(42), "PathKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("PathKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
