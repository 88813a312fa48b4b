package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/ui/theme"
)

// CheckList is a horizontal row of toggleable options.
type CheckList struct {
	Options []string
	Cursor  int
	Focused bool
	checked map[string]bool
}

// NewCheckList creates a check list with the given options ticked.
func NewCheckList(options, checked []string) CheckList {
	c := CheckList{Options: options, checked: make(map[string]bool)}
	for _, o := range checked {
		if slices.Contains(options, o) {
			c.checked[o] = true
		}
	}
	return c
}

// Update handles navigation and toggling while focused.
func (c CheckList) Update(msg tea.Msg) (CheckList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		if c.Cursor >= 0 && c.Cursor < len(c.Options) {
			o := c.Options[c.Cursor]
			c.checked[o] = !c.checked[o]
		}
	}
	return c, nil
}

// Checked returns the ticked options in option order.
func (c CheckList) Checked() []string {
	var out []string
	for _, o := range c.Options {
		if c.checked[o] {
			out = append(out, o)
		}
	}
	return out
}

// View renders the options on one line.
func (c CheckList) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, o := range c.Options {
		box := "[ ]"
		if c.checked[o] {
			box = "[x]"
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if c.checked[o] {
			style = style.Foreground(theme.Success)
		}
		if c.Focused && i == c.Cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		parts = append(parts, style.Render(box+" "+o))
	}
	return strings.Join(parts, "  ")
}
