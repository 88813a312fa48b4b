package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/ui/theme"
	"github.com/abhisek/wordz/internal/words"
)

// StateBadge renders a word's classification.
func StateBadge(s words.State) string {
	switch s {
	case words.StateKnown:
		return theme.Known.Render("● known")
	case words.StateNew:
		return theme.NewWord.Render("● new")
	case words.StateRemoved:
		return theme.Removed.Render("● removed")
	default:
		return theme.Hint.Render("○ unclassified")
	}
}

// WordCard renders a headword with its badge, IPA and, when details is
// set, every stored meaning.
func WordCard(word string, state words.State, notes words.Notes, details bool, width int) string {
	var b strings.Builder
	b.WriteString(theme.Word.Render(word))
	b.WriteString("\n")

	meta := StateBadge(state)
	if notes.IPA != "" {
		meta += "   " + theme.IPA.Render("/"+notes.IPA+"/")
	}
	if notes.TongueTwister {
		meta += "   " + theme.Hint.Render("tongue twister")
	}
	b.WriteString(meta)

	if !details {
		if len(notes.Details) > 0 {
			b.WriteString("\n\n" + theme.Hint.Render(fmt.Sprintf("%d meaning(s), press d to show", len(notes.Details))))
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
	}

	b.WriteString("\n")
	if len(notes.Details) == 0 {
		b.WriteString("\n" + theme.Hint.Render("No notes yet. Press e to add some."))
	}
	for i, d := range notes.Details {
		b.WriteString("\n" + DetailView(i+1, d, width-8))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}

// DetailView renders one numbered meaning.
func DetailView(n int, d words.Detail, width int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d. %s", n, d.Meaning))
	if len(d.POS) > 0 {
		head += " " + theme.Hint.Render("("+strings.Join(d.POS, ", ")+")")
	}
	lines := []string{head}
	for _, ex := range d.Examples {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("   “"+ex+"”"))
	}
	return lipgloss.NewStyle().Width(max(width, 20)).Render(strings.Join(lines, "\n"))
}
