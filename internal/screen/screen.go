package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with a focused text field, so
// global keys such as q and ? are passed through as text.
type InputCapturer interface {
	CapturesInput() bool
}

// Resumer is implemented by screens that refresh their data when they
// become active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// StatusMsg sets the footer status line.
type StatusMsg string

// Status returns a command that shows s in the footer.
func Status(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}
