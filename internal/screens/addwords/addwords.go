// Package addwords lets the user paste new words into the vocabulary.
package addwords

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// AddWordsScreen takes pasted words, one per line.
type AddWordsScreen struct {
	env   *screen.Env
	input textarea.Model
	added int
	tried bool
}

var _ screen.Screen = (*AddWordsScreen)(nil)
var _ screen.InputCapturer = (*AddWordsScreen)(nil)

// New creates an empty add-words screen.
func New(env *screen.Env) *AddWordsScreen {
	ta := textarea.New()
	ta.Placeholder = "one word or phrase per line"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(10)
	return &AddWordsScreen{env: env, input: ta}
}

func (s *AddWordsScreen) Init() tea.Cmd { return s.input.Focus() }

func (s *AddWordsScreen) Title() string { return "Add words" }

func (s *AddWordsScreen) CapturesInput() bool { return true }

func (s *AddWordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddWordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, router.Pop()
		case "ctrl+s":
			s.added = s.env.Session.AddWords(s.input.Value())
			s.tried = true
			s.input.Reset()
			return s, screen.Status(fmt.Sprintf("added %d words", s.added))
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AddWordsScreen) View(width, height int) string {
	parts := []string{theme.Title.Render("Add words"), "", s.input.View()}
	if s.tried {
		msg := fmt.Sprintf("%d new words added, %d words left to see", s.added, s.env.Session.Remaining())
		parts = append(parts, "", theme.Status.Render(msg))
	}
	return layout.Center(components.Card(lipgloss.JoinVertical(lipgloss.Left, parts...), min(width-4, 70)), width, height)
}
