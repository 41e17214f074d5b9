// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents one viewer command reachable from the omnibox.
type Command struct {
	// Name is the canonical command name (e.g., "contents").
	// Always lowercase; matching against user input is done on the
	// already-lowercased leading token.
	Name string

	// Aliases are alternative short names (e.g., "c", "toc").
	Aliases []string

	// Description is shown in the help overlay.
	Description string

	// Usage shows argument syntax for commands that take one.
	Usage string

	// Handler translates the argument tail into the command's single
	// outbound message. Handlers do no I/O and mutate nothing.
	Handler func(args string) tea.Cmd
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands and their aliases. It is populated
// once at startup and read-only afterwards, so concurrent reads need no
// locking.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a registry with the built-in viewer commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Resolve maps an already-lowercased leading token to a canonical command
// name: alias table first, then the token itself. This is the single place
// alias resolution happens; Dispatch takes canonical names only.
func (r *Registry) Resolve(token string) (string, bool) {
	if cmd, ok := r.aliases[token]; ok {
		return cmd.Name, true
	}
	if _, ok := r.commands[token]; ok {
		return token, true
	}
	return "", false
}

// Dispatch invokes the handler registered under the canonical name with the
// argument tail and returns its notification command. It is meant to be
// called only with names the classifier already confirmed via Resolve; an
// unknown name is not an error here, it just dispatches nothing.
func (r *Registry) Dispatch(name, args string) tea.Cmd {
	cmd, ok := r.commands[name]
	if !ok {
		return nil
	}
	return cmd.Handler(args)
}

// All returns the registered commands sorted by name, for the help overlay.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.Register(&Command{
		Name:        "about",
		Aliases:     []string{"a"},
		Description: "Show details about the viewer",
		Handler:     handleAbout,
	})

	r.Register(&Command{
		Name:        "contents",
		Aliases:     []string{"c", "toc"},
		Description: "Show the table of contents for the current document",
		Handler:     handleContents,
	})

	r.Register(&Command{
		Name:        "chdir",
		Aliases:     []string{"cd"},
		Description: "Change the root of the local files pane",
		Usage:       "chdir <directory>",
		Handler:     handleChdir,
	})

	r.Register(&Command{
		Name:        "history",
		Aliases:     []string{"h"},
		Description: "Show previously visited locations",
		Handler:     handleHistory,
	})

	r.Register(&Command{
		Name:        "local",
		Aliases:     []string{"l"},
		Description: "Show the local files pane",
		Handler:     handleLocal,
	})

	r.Register(&Command{
		Name:        "quit",
		Aliases:     []string{"q"},
		Description: "Leave the viewer",
		Handler:     handleQuit,
	})
}

// =============================================================================
// HANDLERS
// =============================================================================

// Handlers are pure translators from (command, argument) to one outbound
// message. Arguments to argument-less commands are deliberately ignored,
// matching how the omnibox has always behaved.

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func handleAbout(string) tea.Cmd {
	return notify(ShowAboutMsg{})
}

func handleContents(string) tea.Cmd {
	return notify(ShowContentsMsg{})
}

func handleChdir(target string) tea.Cmd {
	return notify(ChdirMsg{Target: target})
}

func handleHistory(string) tea.Cmd {
	return notify(ShowHistoryMsg{})
}

func handleLocal(string) tea.Cmd {
	return notify(ShowLocalFilesMsg{})
}

func handleQuit(string) tea.Cmd {
	return notify(QuitMsg{})
}
