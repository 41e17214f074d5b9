// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/markview-tui/internal/commands"
	"github.com/jeranaias/markview-tui/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY
// =============================================================================

const helpKeys = `  F1          Toggle this help
  Tab         Cycle focus between omnibox and document
  Escape      Focus the omnibox / dismiss overlays
  Ctrl+R      Reload the current document
  Ctrl+B      Show bookmarks
  Ctrl+D      Bookmark the current document
  x           Remove the selected bookmark (in the bookmarks pane)
  Ctrl+C      Quit`

// Help is the overlay listing the omnibox commands and the key bindings. The
// command table is built from the live registry, so it never drifts from
// what the omnibox actually accepts.
type Help struct {
	registry *commands.Registry
	theme    *styles.Theme
	width    int
}

// NewHelp creates the help overlay.
func NewHelp(registry *commands.Registry, theme *styles.Theme) *Help {
	return &Help{registry: registry, theme: theme, width: 72}
}

// SetWidth caps the overlay width.
func (h *Help) SetWidth(width int) {
	h.width = width
}

// View renders the overlay box.
func (h *Help) View() string {
	var b strings.Builder

	b.WriteString(h.theme.PaneTitle.Render("Commands"))
	b.WriteString("\n\n")

	nameWidth := 0
	aliasWidth := 0
	rows := h.registry.All()
	for _, cmd := range rows {
		if n := len(h.usage(cmd)); n > nameWidth {
			nameWidth = n
		}
		if n := len(strings.Join(cmd.Aliases, ", ")); n > aliasWidth {
			aliasWidth = n
		}
	}

	for _, cmd := range rows {
		name := h.theme.HelpCommand.Width(nameWidth + 2).Render(h.usage(cmd))
		alias := h.theme.HelpAlias.Width(aliasWidth + 2).Render(strings.Join(cmd.Aliases, ", "))
		desc := h.theme.HelpDesc.Render(cmd.Description)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", name, alias, desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(h.theme.PaneTitle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(h.theme.HelpDesc.Render(helpKeys))

	box := h.theme.OverlayBox
	if h.width > 0 {
		box = box.MaxWidth(h.width)
	}
	return box.Render(b.String())
}

func (h *Help) usage(cmd *commands.Command) string {
	if cmd.Usage != "" {
		return cmd.Usage
	}
	return cmd.Name
}
