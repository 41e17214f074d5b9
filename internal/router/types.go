// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "fmt"

// ============================================================================
// OUTCOME TYPE
// ============================================================================

// Outcome is the result of classifying one submitted input line.
//
// It is a closed sum: the six variants below are the only implementations,
// enforced by the unexported marker method. An Outcome is a value computed
// per submission, consumed once, and discarded.
type Outcome interface {
	isOutcome()
}

// RemoteTarget means the input parses as a likely network locator.
// The URL is not validated beyond the likelihood check; fetching it and
// reporting any fault is the consumer's job.
type RemoteTarget struct {
	URL string
}

// LocalFile means the input names an existing regular file.
type LocalFile struct {
	Path string
}

// LocalDirectory means the input names an existing directory.
type LocalDirectory struct {
	Path string
}

// Unrepresentable means the path exists but is neither a regular file nor a
// directory (device node, socket, named pipe). These are silently ignored.
type Unrepresentable struct {
	Path string
}

// Command means the leading token, lowercased and alias-resolved, matches a
// registered command. Name is the canonical command name; Args is the rest of
// the input with surrounding whitespace trimmed and its original case kept.
type Command struct {
	Name string
	Args string
}

// UnresolvedFilename is the fallback: not a URL, not an existing path, not a
// command. The input is treated as a best-effort file reference so the user
// gets visible feedback when it cannot be opened.
type UnresolvedFilename struct {
	Path string
}

func (RemoteTarget) isOutcome()       {}
func (LocalFile) isOutcome()          {}
func (LocalDirectory) isOutcome()     {}
func (Unrepresentable) isOutcome()    {}
func (Command) isOutcome()            {}
func (UnresolvedFilename) isOutcome() {}

// ============================================================================
// FILESYSTEM PROBE
// ============================================================================

// PathKind is what a filesystem probe reports for a path.
type PathKind int

const (
	// PathMissing means nothing exists at the path.
	PathMissing PathKind = iota
	// PathFile means the path is an existing regular file.
	PathFile
	// PathDir means the path is an existing directory.
	PathDir
	// PathOther means the path exists but is neither file nor directory.
	PathOther
)

// String returns the human-readable name of the path kind.
func (k PathKind) String() string {
	switch k {
	case PathMissing:
		return "Missing"
	case PathFile:
		return "File"
	case PathDir:
		return "Dir"
	case PathOther:
		return "Other"
	default:
		return fmt.Sprintf("PathKind(%d)", k)
	}
}

// FilesystemProbe reports what kind of filesystem entry, if any, a path
// names. Probing is a blocking stat-class call; absence is reported as
// PathMissing, never as an error.
type FilesystemProbe interface {
	Probe(path string) PathKind
}

// ProbeFunc adapts a plain function to the FilesystemProbe interface.
type ProbeFunc func(path string) PathKind

// Probe calls f.
func (f ProbeFunc) Probe(path string) PathKind { return f(path) }

// ============================================================================
// COMMAND RESOLVER
// ============================================================================

// CommandResolver resolves an already-lowercased leading token to a canonical
// command name. Alias expansion and the registration check happen here, in
// one shared step; dispatch never re-resolves.
type CommandResolver interface {
	Resolve(token string) (canonical string, ok bool)
}
