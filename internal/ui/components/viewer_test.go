// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/markview-tui/internal/commands"
	"github.com/jeranaias/markview-tui/internal/ui/styles"
)

const sampleDoc = `# Title

Intro text.

## Section One

` + "```go\n# not a heading\nfunc main() {}\n```" + `

### Deep

## Section Two ##
`

func TestViewerHeadings(t *testing.T) {
	v := NewViewer("auto", styles.NewTheme())
	v.SetDocument("sample.md", sampleDoc)

	headings := v.Headings()
	require.Len(t, headings, 4)

	assert.Equal(t, Heading{Level: 1, Text: "Title", Line: 0}, headings[0])
	assert.Equal(t, 2, headings[1].Level)
	assert.Equal(t, "Section One", headings[1].Text)
	assert.Equal(t, 3, headings[2].Level)
	assert.Equal(t, "Deep", headings[2].Text)

	// Trailing closing hashes are not part of the heading text.
	assert.Equal(t, "Section Two", headings[3].Text)
}

func TestViewerHeadingsSkipFencedCode(t *testing.T) {
	v := NewViewer("auto", styles.NewTheme())
	v.SetDocument("code.md", "```\n# comment\n```\n# Real\n")

	headings := v.Headings()
	require.Len(t, headings, 1)
	assert.Equal(t, "Real", headings[0].Text)
}

func TestViewerSetDocument(t *testing.T) {
	v := NewViewer("auto", styles.NewTheme())
	v.SetSize(60, 20)
	v.SetDocument("sample.md", sampleDoc)

	assert.Equal(t, "sample.md", v.Location())
	assert.Equal(t, sampleDoc, v.Source())
	assert.NotEmpty(t, v.View())
}

func TestViewerRenderPlain(t *testing.T) {
	v := NewViewer("auto", styles.NewTheme())
	v.width = 60
	v.source = "before\n```go\nfunc main() {}\n```\nafter\n"

	out := v.renderPlain()
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
	assert.Contains(t, out, "go", "fence language should appear as block header")
}

func TestCodeBlockRender(t *testing.T) {
	block := NewCodeBlock("go", "package main\n\nfunc main() {}\n")
	out := block.Render()

	assert.Contains(t, out, "go")
	assert.Contains(t, out, "1", "line numbers should be present")
	assert.Greater(t, len(strings.Split(out, "\n")), 3)
}

func TestCodeBlockRenderUnknownLanguage(t *testing.T) {
	block := NewCodeBlock("", "just some text")
	assert.NotEmpty(t, block.Render())
}

func TestHelpListsEveryCommand(t *testing.T) {
	help := NewHelp(commands.NewRegistry(), styles.NewTheme())
	out := help.View()

	for _, cmd := range commands.NewRegistry().All() {
		name := cmd.Name
		if cmd.Usage != "" {
			name = cmd.Usage
		}
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "toc", "aliases should be listed")
	assert.Contains(t, out, "F1")
}
