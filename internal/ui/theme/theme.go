package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm, readable on dark terminals
var (
	Primary   = lipgloss.Color("#60A5FA") // Sky Blue
	Secondary = lipgloss.Color("#34D399") // Emerald
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
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

	// Word is the big headword of the browse, learn and review screens.
	Word = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)

	IPA = lipgloss.NewStyle().
		Foreground(Accent)
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

	Known = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	NewWord = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Removed = lipgloss.NewStyle().
		Foreground(Error)

	Status = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	BarUp = lipgloss.NewStyle().
		Foreground(Success)

	BarDown = lipgloss.NewStyle().
		Foreground(Error)
)
