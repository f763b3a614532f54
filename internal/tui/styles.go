package tui

import (
	"github.com/bnjuguna/momentum/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

// Color palette, carried over from the web dashboard.
var (
	colorPrimary   = lipgloss.Color("#60A5FA")
	colorSecondary = lipgloss.Color("#A78BFA")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#34D399")
	colorWarning   = lipgloss.Color("#FBBF24")
	colorError     = lipgloss.Color("#F87171")
	colorFg        = lipgloss.Color("#E5E7EB")
	colorSubtle    = lipgloss.Color("#414868")
)

// Per-category accent colors, same assignment as the category chart.
var categoryColors = map[string]lipgloss.Color{
	"Work":        lipgloss.Color("#60A5FA"),
	"Learning":    lipgloss.Color("#34D399"),
	"Programming": lipgloss.Color("#A78BFA"),
	"Personal":    lipgloss.Color("#FBBF24"),
	"Admin":       lipgloss.Color("#F87171"),
}

// Heatmap cell styles, one per intensity level. The level thresholds live in
// the stats package; these are only their colors.
var heatmapStyles = map[stats.Level]lipgloss.Style{
	stats.LevelNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("#26283B")),
	stats.LevelLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2A4A73")),
	stats.LevelMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#3B6AA6")),
	stats.LevelHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4D8AD9")),
	stats.LevelMax:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Stat cards
	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)
