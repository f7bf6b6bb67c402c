package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/matching"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Level colors, one per classification band.
var (
	LevelLowColor    = lipgloss.Color("#38BDF8") // Sky
	LevelMediumColor = lipgloss.Color("#FACC15") // Amber
	LevelHighColor   = lipgloss.Color("#F472B6") // Pink
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// LevelColor returns the display color for a classified level.
func LevelColor(l matching.Level) color.Color {
	switch l {
	case matching.LevelHigh:
		return LevelHighColor
	case matching.LevelMedium:
		return LevelMediumColor
	case matching.LevelLow:
		return LevelLowColor
	}
	return TextDim
}

// LevelBadge renders a level as a short colored tag.
func LevelBadge(l matching.Level) string {
	return lipgloss.NewStyle().
		Foreground(LevelColor(l)).
		Bold(true).
		Render(strings.ToUpper(l.String()))
}
