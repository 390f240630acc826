package theme

import "github.com/charmbracelet/lipgloss"

// Ayu color palette. AdaptiveColor picks the light or dark variant per terminal.
var (
	ColorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}

	colorBar = lipgloss.AdaptiveColor{Light: "#e7e8e9", Dark: "#1f2430"}
)

// Semantic text styles.
var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// Tab bar styles.
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)
)

// StatusBarStyle for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Background(colorBar).
	Foreground(ColorMuted).
	Padding(0, 1)

// Menu overlay styles, shown when the menu toggle is open.
var (
	MenuTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	MenuRowStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	MenuActiveRowStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Padding(0, 1)
)

// Pane styles.
var PaneHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorAccent).
	Bold(true)

// ColorSelected outlines the bubble under the cursor.
var ColorSelected = ColorWarn

// Message bubble styles. Borders are set per bubble from its corner profile.
var (
	MineBubbleStyle = lipgloss.NewStyle().
			BorderForeground(ColorAccent).
			Padding(0, 1)

	TheirBubbleStyle = lipgloss.NewStyle().
				BorderForeground(ColorMuted).
				Padding(0, 1)

	SenderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Receipt styles.
var (
	ReceiptStyle         = MutedStyle
	ReceiptReadStyle     = AccentStyle.Bold(true)
	ReceiptFallbackStyle = WarnStyle
)
