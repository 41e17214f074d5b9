// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/markview-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full frame: omnibox on top, document (with an optional
// side pane) in the middle, status line at the bottom. Overlays replace the
// middle area while open.
func (m Model) View() string {
	if !m.ready {
		return "Starting markview..."
	}

	var middle string
	switch {
	case m.showHelp:
		middle = m.centered(m.help.View())
	case m.showAbout:
		middle = m.centered(m.aboutView())
	case m.pane != paneNone:
		middle = lipgloss.JoinHorizontal(lipgloss.Top, m.paneView(), m.viewer.View())
	default:
		middle = m.viewer.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.omnibox.View(),
		middle,
		m.statusView(),
	)
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.mainHeight(), lipgloss.Center, lipgloss.Center, content)
}

// =============================================================================
// STATUS LINE
// =============================================================================

func (m Model) statusView() string {
	style := m.theme.Status
	if m.statusErr {
		style = m.theme.StatusError
	}
	return style.Render(util.TruncateWidth(m.status, m.width))
}

// =============================================================================
// SIDE PANE
// =============================================================================

var paneTitles = map[paneKind]string{
	paneHistory:   "History",
	paneContents:  "Contents",
	paneBookmarks: "Bookmarks",
	paneLocal:     "Local Files",
}

func (m Model) paneView() string {
	var body string
	if m.pane == paneLocal {
		body = m.picker.View()
	} else {
		body = m.listView()
	}

	content := m.theme.PaneTitle.Render(paneTitles[m.pane]) + "\n" + body
	return m.theme.PaneBorder.
		Width(paneWidth - 2).
		Height(m.mainHeight() - 2).
		Render(content)
}

func (m Model) listView() string {
	// Keep the selection visible in a window of rows.
	visible := m.mainHeight() - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.items[i]
		label := util.TruncateWidth(item.label, paneWidth-6)
		if i == m.selected {
			b.WriteString(m.theme.ListSelected.Render("> " + label))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + label))
		}
		if item.meta != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.ListMeta.Render("    " + item.meta))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// ABOUT
// =============================================================================

func (m Model) aboutView() string {
	body := fmt.Sprintf("%s %s\n\nA terminal markdown viewer.\n\n%s",
		m.theme.PaneTitle.Render(appName),
		appVersion,
		m.theme.ListMeta.Render(appHome))
	return m.theme.OverlayBox.Render(body)
}
