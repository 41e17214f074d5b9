// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/markview-tui/internal/ui/styles"
)

// =============================================================================
// DOCUMENT VIEWER
// =============================================================================

// Viewer renders a markdown document into a scrollable viewport.
type Viewer struct {
	viewport viewport.Model
	theme    *styles.Theme
	style    string

	location string
	source   string
	width    int
	height   int
}

// NewViewer creates a viewer. style is a glamour style name ("auto" picks one
// for the terminal background).
func NewViewer(style string, theme *styles.Theme) *Viewer {
	vp := viewport.New(80, 24)
	return &Viewer{
		viewport: vp,
		theme:    theme,
		style:    style,
		width:    80,
		height:   24,
	}
}

// SetSize resizes the viewport and re-renders the current document to the
// new wrap width.
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
	if v.source != "" {
		v.viewport.SetContent(v.render())
	}
}

// SetDocument replaces the document and scrolls back to the top.
func (v *Viewer) SetDocument(location, source string) {
	v.location = location
	v.source = source
	v.viewport.SetContent(v.render())
	v.viewport.GotoTop()
}

// Location returns the location of the current document, empty when nothing
// is loaded.
func (v *Viewer) Location() string {
	return v.location
}

// Source returns the raw markdown of the current document.
func (v *Viewer) Source() string {
	return v.source
}

// ScrollToLine scrolls so the given source line is at the top of the
// viewport. Rendered output does not map 1:1 to source lines, so this is an
// approximation that lands close enough for table-of-contents jumps.
func (v *Viewer) ScrollToLine(line int) {
	total := strings.Count(v.source, "\n") + 1
	if total == 0 {
		return
	}
	target := v.viewport.TotalLineCount() * line / total
	v.viewport.SetYOffset(target)
}

// Update handles scrolling.
func (v *Viewer) Update(msg tea.Msg) (*Viewer, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the viewport.
func (v *Viewer) View() string {
	return v.viewport.View()
}

// =============================================================================
// RENDERING
// =============================================================================

func (v *Viewer) render() string {
	wrap := v.width - 2
	if wrap < 20 {
		wrap = 20
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	switch v.style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(v.style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return v.renderPlain()
	}
	out, err := renderer.Render(v.source)
	if err != nil {
		return v.renderPlain()
	}
	return out
}

// renderPlain is the degraded path when glamour cannot render: prose is
// passed through untouched and fenced code blocks still get highlighting.
func (v *Viewer) renderPlain() string {
	var out strings.Builder
	var code strings.Builder
	var lang string
	inFence := false

	for _, line := range strings.Split(v.source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				block := NewCodeBlock(lang, code.String())
				block.MaxWidth = v.width
				out.WriteString(block.Render())
				out.WriteString("\n")
				code.Reset()
			} else {
				lang = strings.TrimPrefix(trimmed, "```")
			}
			inFence = !inFence
			continue
		}
		if inFence {
			code.WriteString(line)
			code.WriteString("\n")
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	if inFence {
		// Unterminated fence at EOF.
		block := NewCodeBlock(lang, code.String())
		block.MaxWidth = v.width
		out.WriteString(block.Render())
		out.WriteString("\n")
	}
	return out.String()
}

// =============================================================================
// HEADINGS
// =============================================================================

// Heading is one ATX heading found in the document source.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// Headings extracts the document's headings for the table of contents.
// Headings inside fenced code blocks are skipped.
func (v *Viewer) Headings() []Heading {
	var headings []Heading
	inFence := false

	for i, line := range strings.Split(v.source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level > 6 {
			continue
		}
		rest := trimmed[level:]
		if rest != "" && !strings.HasPrefix(rest, " ") {
			continue
		}
		text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "#"))
		headings = append(headings, Heading{Level: level, Text: text, Line: i})
	}
	return headings
}
