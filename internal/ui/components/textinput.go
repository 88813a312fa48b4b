package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput with a submit-on-enter contract.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates a new focused text input. A charLimit of zero
// means unlimited.
func NewTextInput(placeholder string, charLimit, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the content.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

// Blur removes keyboard focus.
func (t *TextInput) Blur() { t.Model.Blur() }

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool { return t.Model.Focused() }

// Reset clears the content.
func (t *TextInput) Reset() { t.Model.Reset() }
