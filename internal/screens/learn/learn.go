// Package learn drills the words marked new.
package learn

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screens/editor"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
	"github.com/abhisek/wordz/internal/words"
)

// LearnScreen shows one new word at a time with its notes.
type LearnScreen struct {
	env     *screen.Env
	word    string
	details bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.Resumer = (*LearnScreen)(nil)

// New creates a learn screen.
func New(env *screen.Env) *LearnScreen {
	return &LearnScreen{env: env, details: true}
}

func (s *LearnScreen) Init() tea.Cmd {
	s.word, _ = s.env.Session.StartLearn()
	return nil
}

// Resume follows a rename or removal of the shown word.
func (s *LearnScreen) Resume() tea.Cmd {
	m := s.env.Session.Model
	if s.word != "" && !m.New.Has(s.word) {
		s.word, _ = s.env.Session.LearnNext()
	}
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn · " + string(s.env.Session.Model.LearnOrder)
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.word == "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "k", Description: "Learned"},
		{Key: "n", Description: "Keep"},
		{Key: "→/←", Description: "Next/Prev"},
		{Key: "x", Description: "Remove"},
		{Key: "o", Description: "Order"},
		{Key: "e", Description: "Edit"},
		{Key: "s", Description: "Speak"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	sess := s.env.Session

	switch kmsg.String() {
	case "esc":
		return s, router.Pop()
	case "o":
		sess.SetLearnOrder(nextOrder(sess.Model.LearnOrder))
		s.word, _ = sess.LearnNext()
		return s, screen.Status("order: " + string(sess.Model.LearnOrder))
	}
	if s.word == "" {
		return s, nil
	}

	switch kmsg.String() {
	case "k":
		prev := s.word
		s.word, _ = sess.LearnMarkKnown()
		return s, screen.Status(prev + " learned")
	case "n", "right", "enter":
		if kmsg.String() == "n" {
			s.word, _ = sess.LearnMarkNew()
		} else {
			s.word, _ = sess.LearnNext()
		}
	case "left":
		if w, ok := sess.LearnPrevious(); ok {
			s.word = w
		}
	case "x", "delete":
		prev := s.word
		s.word, _ = sess.LearnRemove()
		return s, screen.Status(prev + " removed")
	case "d":
		s.details = !s.details
	case "e":
		return s, router.Push(editor.New(s.env, s.word))
	case "s":
		if msg := s.env.Speak(s.word); msg != "" {
			return s, screen.Status(msg)
		}
	}
	return s, nil
}

func nextOrder(o words.LearnOrder) words.LearnOrder {
	i := slices.Index(words.LearnOrders, o)
	return words.LearnOrders[(i+1)%len(words.LearnOrders)]
}

func (s *LearnScreen) View(width, height int) string {
	if s.word == "" {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Nothing to learn"),
			"",
			theme.Hint.Render("Mark words as new while browsing to learn them here."))
		return layout.Center(msg, width, height)
	}
	m := s.env.Session.Model
	card := components.WordCard(s.word, m.State(s.word), m.NotesFor(s.word), s.details, width)
	left := theme.Hint.Render(fmt.Sprintf("%d words to learn", len(s.env.Session.LearnCandidates())))
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, card, "", left), width, height)
}
