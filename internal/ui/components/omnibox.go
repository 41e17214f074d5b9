// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/markview-tui/internal/commands"
	"github.com/jeranaias/markview-tui/internal/router"
	"github.com/jeranaias/markview-tui/internal/ui/styles"
)

// =============================================================================
// OMNIBOX - command and location entry
// =============================================================================

const defaultPlaceholder = "Enter a location or command"

// Omnibox is the single-line entry for locations and commands.
//
// On submit it classifies the input and emits at most one notification
// message; everything the rest of the application does in response flows
// from that message. The omnibox itself opens nothing and reads nothing.
type Omnibox struct {
	input      textinput.Model
	classifier router.Classifier
	registry   *commands.Registry
	theme      *styles.Theme
	visiting   string
	width      int
}

// NewOmnibox builds the omnibox. The filesystem probe and URL predicate are
// injected so tests can run against fakes.
func NewOmnibox(registry *commands.Registry, probe router.FilesystemProbe, urlLikely func(string) bool, theme *styles.Theme) *Omnibox {
	ti := textinput.New()
	ti.Placeholder = defaultPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.PromptStyle = theme.OmniboxPrompt
	ti.TextStyle = theme.OmniboxText
	ti.PlaceholderStyle = theme.OmniboxPlaceholder
	ti.Cursor.Style = theme.OmniboxPrompt

	return &Omnibox{
		input: ti,
		classifier: router.Classifier{
			Probe:     probe,
			URLLikely: urlLikely,
			Commands:  registry,
		},
		registry: registry,
		theme:    theme,
	}
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit classifies the current value and returns the resulting notification
// command, plus whether the submission was handled.
//
// The value is cleared before classification so the UI never echoes stale
// text while the outcome is acted on, then selectively restored: to the
// resolved path for a local file, or to the original text for the unresolved
// fallback so the user can see and correct the mistake.
//
// handled is false only for the exists-but-unrepresentable case, the one
// outcome that emits nothing and leaves the event for other handlers.
func (o *Omnibox) Submit() (cmd tea.Cmd, handled bool) {
	// NFC normalization: paths pasted from some platforms arrive
	// decomposed and would miss the filesystem probe.
	text := strings.TrimSpace(norm.NFC.String(o.input.Value()))
	o.input.SetValue("")

	if text == "" {
		return nil, true
	}

	switch out := o.classifier.Classify(text).(type) {
	case router.RemoteTarget:
		return notify(commands.OpenRemoteMsg{URL: out.URL}), true

	case router.LocalFile:
		o.input.SetValue(out.Path)
		return notify(commands.OpenLocalFileMsg{Path: out.Path}), true

	case router.LocalDirectory:
		return notify(commands.ChdirMsg{Target: out.Path}), true

	case router.Command:
		return o.registry.Dispatch(out.Name, out.Args), true

	case router.Unrepresentable:
		// Exists, but is nothing we can view. Ignore it and let the
		// event keep propagating.
		return nil, false

	case router.UnresolvedFilename:
		o.input.SetValue(out.Path)
		return notify(commands.OpenLocalFileMsg{Path: out.Path, Unresolved: true}), true
	}

	return nil, false
}

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// =============================================================================
// VISITING STATE
// =============================================================================

// SetVisiting records the location currently being visited. A non-empty
// location becomes both the placeholder and the value, so the omnibox always
// shows where the user is; clearing it restores the default hint.
func (o *Omnibox) SetVisiting(location string) {
	o.visiting = location
	if location != "" {
		o.input.Placeholder = location
		o.input.SetValue(location)
		return
	}
	o.input.Placeholder = defaultPlaceholder
}

// Visiting returns the location last recorded via SetVisiting.
func (o *Omnibox) Visiting() string {
	return o.visiting
}

// =============================================================================
// WIDGET PLUMBING
// =============================================================================

// Focus focuses the omnibox.
func (o *Omnibox) Focus() tea.Cmd {
	return o.input.Focus()
}

// Blur removes focus.
func (o *Omnibox) Blur() {
	o.input.Blur()
}

// Focused reports whether the omnibox has focus.
func (o *Omnibox) Focused() bool {
	return o.input.Focused()
}

// Value returns the current displayed text.
func (o *Omnibox) Value() string {
	return o.input.Value()
}

// SetValue replaces the displayed text.
func (o *Omnibox) SetValue(value string) {
	o.input.SetValue(value)
	o.input.CursorEnd()
}

// SetWidth sets the omnibox width.
func (o *Omnibox) SetWidth(width int) {
	o.width = width
	inputWidth := width - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	o.input.Width = inputWidth
}

// Update forwards non-submit events to the text input. Enter is not handled
// here; the application model calls Submit so an unhandled submission can
// fall through to its own key handling.
func (o *Omnibox) Update(msg tea.Msg) (*Omnibox, tea.Cmd) {
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the omnibox with a bottom border that brightens on focus.
func (o *Omnibox) View() string {
	border := o.theme.OmniboxBorder
	if o.input.Focused() {
		border = o.theme.OmniboxFocused
	}
	return border.Width(o.width).Render(o.input.View())
}
