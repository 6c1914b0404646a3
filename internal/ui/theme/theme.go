package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Indigo primary, with one accent per exam section.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate

	Speaking  = lipgloss.Color("#3B82F6") // Blue
	Writing   = lipgloss.Color("#22C55E") // Green
	Reading   = lipgloss.Color("#A855F7") // Purple
	Listening = lipgloss.Color("#F97316") // Orange
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Danger = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	KeyActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	KeyInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)

// SectionColor returns the accent color for an exam section name.
func SectionColor(section string) color.Color {
	switch section {
	case "speaking":
		return Speaking
	case "writing":
		return Writing
	case "reading":
		return Reading
	case "listening":
		return Listening
	}
	return TextDim
}

// SectionStyle renders text in a section's accent color.
func SectionStyle(section string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SectionColor(section)).Bold(true)
}

// PriorityStyle colors a task priority.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(Error)
	case "medium":
		return lipgloss.NewStyle().Foreground(Warning)
	}
	return lipgloss.NewStyle().Foreground(Success)
}
