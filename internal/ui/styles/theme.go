// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ==========================================================================
// PALETTE
// ==========================================================================

// Adaptive colors pick a variant for light and dark terminals.
var (
	Cyan          = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	Amber         = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	Rose          = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FB7185"}
	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	Surface       = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#111827"}
	Overlay       = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	FocusRing     = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#67E8F9"}
)

// ==========================================================================
// THEME
// ==========================================================================

// Theme holds the composed styles for the application. It detects the
// terminal's color capability once at startup.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Omnibox
	OmniboxPrompt      lipgloss.Style
	OmniboxText        lipgloss.Style
	OmniboxPlaceholder lipgloss.Style
	OmniboxBorder      lipgloss.Style
	OmniboxFocused     lipgloss.Style

	// Status line
	Status      lipgloss.Style
	StatusError lipgloss.Style

	// Panes and overlays
	PaneTitle    lipgloss.Style
	PaneBorder   lipgloss.Style
	OverlayBox   lipgloss.Style
	HelpCommand  lipgloss.Style
	HelpAlias    lipgloss.Style
	HelpDesc     lipgloss.Style
	ListSelected lipgloss.Style
	ListItem     lipgloss.Style
	ListMeta     lipgloss.Style
}

// NewTheme builds the theme for the current terminal.
func NewTheme() *Theme {
	return &Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),

		OmniboxPrompt:      lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		OmniboxText:        lipgloss.NewStyle().Foreground(TextPrimary),
		OmniboxPlaceholder: lipgloss.NewStyle().Foreground(TextMuted).Italic(true),
		OmniboxBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Overlay),
		OmniboxFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(FocusRing),

		Status:      lipgloss.NewStyle().Foreground(TextSecondary),
		StatusError: lipgloss.NewStyle().Foreground(Rose).Bold(true),

		PaneTitle: lipgloss.NewStyle().Foreground(Cyan).Bold(true).Padding(0, 1),
		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay),
		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FocusRing).
			Padding(1, 2),
		HelpCommand:  lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		HelpAlias:    lipgloss.NewStyle().Foreground(Amber),
		HelpDesc:     lipgloss.NewStyle().Foreground(TextSecondary),
		ListSelected: lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		ListItem:     lipgloss.NewStyle().Foreground(TextPrimary),
		ListMeta:     lipgloss.NewStyle().Foreground(TextMuted),
	}
}
