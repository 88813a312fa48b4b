// Package browse shows the vocabulary one unseen word at a time.
package browse

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screens/editor"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// BrowseScreen walks the eligible words in random order.
type BrowseScreen struct {
	env     *screen.Env
	word    string
	details bool
	done    bool
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)
var _ screen.Resumer = (*BrowseScreen)(nil)

// New creates a browse screen. It continues from the persisted current
// word when there is one.
func New(env *screen.Env) *BrowseScreen {
	return &BrowseScreen{env: env}
}

func (s *BrowseScreen) Init() tea.Cmd {
	s.env.Session.Browse()
	if cur := s.env.Session.CurrentWord(); cur != "" && s.env.Session.Model.Contains(cur) {
		s.word = cur
		return nil
	}
	s.next()
	return nil
}

// Resume picks up renames and removals made in the editor.
func (s *BrowseScreen) Resume() tea.Cmd {
	s.word = s.env.Session.CurrentWord()
	if s.word == "" && !s.done {
		s.next()
	}
	return nil
}

func (s *BrowseScreen) Title() string {
	return "Browse"
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "→", Description: "Next"},
		{Key: "←", Description: "Back"},
		{Key: "k", Description: "Known"},
		{Key: "n", Description: "New"},
		{Key: "x", Description: "Remove"},
		{Key: "d", Description: "Details"},
		{Key: "e", Description: "Edit"},
		{Key: "s", Description: "Speak"},
	}
}

func (s *BrowseScreen) next() {
	w, ok := s.env.Session.Next()
	s.word = w
	s.done = !ok
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, router.Pop()
	}
	if s.done {
		return s, nil
	}

	sess := s.env.Session
	switch kmsg.String() {
	case "right", "enter", "space", " ":
		s.next()
	case "left":
		if w, ok := sess.Previous(); ok {
			s.word = w
		} else {
			return s, screen.Status("no earlier word")
		}
	case "k":
		prev := s.word
		sess.MarkKnown()
		s.next()
		return s, screen.Status(prev + " → known")
	case "n":
		prev := s.word
		sess.MarkNew()
		s.next()
		return s, screen.Status(prev + " → new")
	case "x", "delete":
		prev := s.word
		w, ok := sess.RemoveCurrent()
		s.word, s.done = w, !ok
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

func (s *BrowseScreen) View(width, height int) string {
	if s.done {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("All words seen!"),
			"",
			theme.Hint.Render("Add more words or review what you have learned."))
		return layout.Center(msg, width, height)
	}

	m := s.env.Session.Model
	card := components.WordCard(s.word, m.State(s.word), m.NotesFor(s.word), s.details, width)
	pos := theme.Hint.Render(fmt.Sprintf("%d words left", s.env.Session.Remaining()))
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, card, "", pos), width, height)
}
