// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the omnibox command system for the viewer.
//
// This package owns the alias table and the registry of viewer commands.
// Handlers never touch application state or perform I/O: each one translates
// a (command, argument) pair into exactly one typed bubbletea message that
// the application model acts on.
//
// # Key Types
//
//   - Registry: command registry with the built-in command set
//   - Command: one registered command with its aliases and handler
//   - The *Msg types: the outbound notifications handlers emit
//
// # Built-in Commands
//
//   - about (a): show the about overlay
//   - contents (c, toc): show the table of contents
//   - chdir (cd): change the local-browse root
//   - history (h): show visited locations
//   - local (l): show the local files pane
//   - quit (q): leave the application
//
// # Usage
//
// Resolve a lowercased leading token, then dispatch:
//
//	if name, ok := registry.Resolve(token); ok {
//	    return registry.Dispatch(name, args)
//	}
package commands
