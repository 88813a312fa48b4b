package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordz/internal/ui/theme"
)

// List is a scrollable, selectable column of strings.
type List struct {
	Items    []string
	Selected int
	offset   int
}

// NewList creates a list.
func NewList(items []string) List {
	return List{Items: items}
}

// SetItems replaces the items and keeps the selection in range.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.clamp()
}

// Current returns the selected item, or "" for an empty list.
func (l List) Current() string {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return ""
	}
	return l.Items[l.Selected]
}

// Update handles navigation keys.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up":
		l.Selected--
	case "down":
		l.Selected++
	case "pgup":
		l.Selected -= 10
	case "pgdown":
		l.Selected += 10
	case "home":
		l.Selected = 0
	case "end":
		l.Selected = len(l.Items) - 1
	}
	l.clamp()
	return l, nil
}

func (l *List) clamp() {
	l.Selected = min(max(l.Selected, 0), max(len(l.Items)-1, 0))
}

// View renders at most height rows, scrolled to keep the selection
// visible.
func (l *List) View(width, height int) string {
	if len(l.Items) == 0 {
		return theme.Hint.Render("  (empty)")
	}
	height = max(height, 1)
	if l.Selected < l.offset {
		l.offset = l.Selected
	}
	if l.Selected >= l.offset+height {
		l.offset = l.Selected - height + 1
	}
	l.offset = min(l.offset, max(len(l.Items)-height, 0))

	var b strings.Builder
	end := min(l.offset+height, len(l.Items))
	for i := l.offset; i < end; i++ {
		line := "    " + l.Items[i]
		style := theme.Unselected
		if i == l.Selected {
			line = "  ▸ " + l.Items[i]
			style = theme.Selected
		}
		b.WriteString(style.MaxWidth(width).Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Position renders "n/total" for the selection.
func (l List) Position() string {
	if len(l.Items) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", l.Selected+1, len(l.Items))
}

// Card wraps content in a rounded-border box of the given inner width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Padding(0, 2).Render(content)
}
