package editor

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// ExpressionScreen adds a phrase with one meaning.
type ExpressionScreen struct {
	env      *screen.Env
	phrase   components.TextInput
	meaning  components.TextInput
	examples textarea.Model
	focus    int
	err      string
}

var _ screen.Screen = (*ExpressionScreen)(nil)
var _ screen.InputCapturer = (*ExpressionScreen)(nil)

// NewExpression creates an empty expression form.
func NewExpression(env *screen.Env) *ExpressionScreen {
	s := &ExpressionScreen{
		env:      env,
		phrase:   components.NewTextInput("phrase, e.g. break the ice", 120, 60),
		meaning:  components.NewTextInput("meaning", 0, 60),
		examples: newExamplesArea(),
	}
	s.meaning.Blur()
	return s
}

func (s *ExpressionScreen) Init() tea.Cmd { return s.phrase.Init() }

func (s *ExpressionScreen) Title() string { return "Add expression" }

func (s *ExpressionScreen) CapturesInput() bool { return true }

func (s *ExpressionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *ExpressionScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.phrase.Blur()
	s.meaning.Blur()
	s.examples.Blur()
	switch i {
	case 0:
		return s.phrase.Focus()
	case 1:
		return s.meaning.Focus()
	default:
		return s.examples.Focus()
	}
}

func (s *ExpressionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, router.Pop()
		case "tab":
			return s, s.setFocus((s.focus + 1) % 3)
		case "shift+tab":
			return s, s.setFocus((s.focus + 2) % 3)
		case "ctrl+s":
			phrase := s.phrase.Value()
			err := s.env.Session.AddExpression(phrase, s.meaning.Value(), strings.Split(s.examples.Value(), "\n"))
			if err != nil {
				s.err = "needs a phrase and a meaning or example"
				return s, nil
			}
			return s, tea.Batch(router.Pop(), screen.Status("added "+phrase))
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case 0:
		s.phrase, cmd = s.phrase.Update(msg)
	case 1:
		s.meaning, cmd = s.meaning.Update(msg)
	default:
		s.examples, cmd = s.examples.Update(msg)
	}
	return s, cmd
}

func (s *ExpressionScreen) View(width, height int) string {
	body := []string{
		theme.Title.Render("New expression"),
		"",
		"Phrase   " + s.phrase.View(),
		"Meaning  " + s.meaning.View(),
		"",
		s.examples.View(),
	}
	if s.err != "" {
		body = append(body, "", theme.ErrorText.Render(s.err))
	}
	return layout.Center(components.Card(strings.Join(body, "\n"), min(width-4, 76)), width, height)
}
