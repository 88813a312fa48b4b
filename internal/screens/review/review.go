// Package review quizzes learned words and expressions.
package review

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screens/editor"
	"github.com/abhisek/wordz/internal/selection"
	"github.com/abhisek/wordz/internal/speech"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// listenFor is how long a pronunciation attempt is recorded.
const listenFor = 3 * time.Second

type phase int

const (
	phaseFilter phase = iota
	phaseReview
)

// heardMsg carries a transcription back to the screen.
type heardMsg struct {
	Text string
	Err  error
}

// ReviewScreen first asks for an optional filter, then draws words from
// the review pool.
type ReviewScreen struct {
	env   *screen.Env
	phase phase

	from, to   components.TextInput
	twisters   bool
	focus      int
	size       int
	word       string
	details    bool
	heard      string
	listening  bool
	filterDesc string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.InputCapturer = (*ReviewScreen)(nil)

// New creates a review screen prefilled with the last filter.
func New(env *screen.Env) *ReviewScreen {
	f := env.Session.ReviewFilter()
	s := &ReviewScreen{
		env:      env,
		from:     components.NewTextInput("from (e.g. 2024-05-01 or 01.05)", 20, 30),
		to:       components.NewTextInput("to", 20, 30),
		twisters: f.OnlyTongueTwisters,
	}
	s.from.SetValue(f.From)
	s.to.SetValue(f.To)
	s.to.Blur()
	return s
}

func (s *ReviewScreen) Init() tea.Cmd {
	return s.from.Init()
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) CapturesInput() bool {
	return s.phase == phaseFilter
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseFilter {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+T", Description: "Tongue twisters"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "→", Description: "Next"},
		{Key: "d", Description: "Details"},
		{Key: "s", Description: "Speak"},
		{Key: "m", Description: "Say it"},
		{Key: "e", Description: "Edit"},
		{Key: "f", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case heardMsg:
		s.listening = false
		if msg.Err != nil {
			return s, screen.Status(msg.Err.Error())
		}
		s.heard = msg.Text
		return s, nil
	case tea.KeyMsg:
		if s.phase == phaseFilter {
			return s.updateFilter(msg)
		}
		return s.updateReview(msg)
	}
	if s.phase == phaseFilter {
		return s.forward(msg)
	}
	return s, nil
}

func (s *ReviewScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focus == 0 {
		s.from, cmd = s.from.Update(msg)
	} else {
		s.to, cmd = s.to.Update(msg)
	}
	return s, cmd
}

func (s *ReviewScreen) updateFilter(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, router.Pop()
	case "tab", "shift+tab", "down", "up":
		s.focus = 1 - s.focus
		if s.focus == 0 {
			s.to.Blur()
			return s, s.from.Focus()
		}
		s.from.Blur()
		return s, s.to.Focus()
	case "ctrl+t":
		s.twisters = !s.twisters
		return s, nil
	case "enter":
		return s, s.start()
	}
	return s.forward(msg)
}

func (s *ReviewScreen) start() tea.Cmd {
	f := selection.ReviewFilter{From: s.from.Value(), To: s.to.Value(), OnlyTongueTwisters: s.twisters}
	s.size = s.env.Session.StartReview(f)
	s.filterDesc = describe(f, s.env.Session.ReviewPool())
	s.phase = phaseReview
	s.word, _ = s.env.Session.ReviewNext()
	s.heard = ""
	return nil
}

func describe(f selection.ReviewFilter, p *selection.ReviewPool) string {
	var parts []string
	if p != nil && !p.From.IsZero() {
		parts = append(parts, "from "+p.From.Format("2006-01-02"))
	}
	if p != nil && !p.To.IsZero() {
		parts = append(parts, "to "+p.To.Format("2006-01-02"))
	}
	if f.OnlyTongueTwisters {
		parts = append(parts, "tongue twisters only")
	}
	if len(parts) == 0 {
		return "all learned words"
	}
	return strings.Join(parts, ", ")
}

func (s *ReviewScreen) updateReview(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.env.Session.Browse()
		return s, router.Pop()
	case "f":
		s.phase = phaseFilter
		s.focus = 0
		s.to.Blur()
		return s, s.from.Focus()
	}
	if s.word == "" {
		return s, nil
	}

	switch msg.String() {
	case "right", "enter", "space", " ":
		s.word, _ = s.env.Session.ReviewNext()
		s.heard = ""
	case "d":
		s.details = !s.details
	case "e":
		return s, router.Push(editor.New(s.env, s.word))
	case "s":
		if msg := s.env.Speak(s.word); msg != "" {
			return s, screen.Status(msg)
		}
	case "m":
		if s.env.Speech == nil {
			return s, screen.Status("speech is not configured")
		}
		if s.listening {
			return s, nil
		}
		s.listening = true
		s.heard = ""
		return s, listen(s.env.Speech)
	}
	return s, nil
}

func listen(svc *speech.Service) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan heardMsg, 1)
		svc.RecordAndTranscribe(listenFor, func(text string, err error) {
			ch <- heardMsg{Text: text, Err: err}
		})
		return <-ch
	}
}

// Matches reports whether the heard text is the target, ignoring case
// and surrounding punctuation.
func Matches(target, heard string) bool {
	clean := func(s string) string {
		return strings.ToLower(strings.Trim(strings.TrimSpace(s), ".,!?;:\"'"))
	}
	return clean(target) != "" && clean(target) == clean(heard)
}

func (s *ReviewScreen) View(width, height int) string {
	if s.phase == phaseFilter {
		return s.viewFilter(width, height)
	}
	if s.word == "" {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Nothing to review"),
			"",
			theme.Hint.Render("No learned words match "+s.filterDesc+". Press f to change the filter."))
		return layout.Center(msg, width, height)
	}

	m := s.env.Session.Model
	parts := []string{components.WordCard(s.word, m.State(s.word), m.NotesFor(s.word), s.details, width), ""}
	if d, ok := m.LearnedLog[strings.ToLower(s.word)]; ok {
		parts = append(parts, theme.Hint.Render("learned "+d))
	}
	switch {
	case s.listening:
		parts = append(parts, theme.Status.Render("listening..."))
	case s.heard != "" && Matches(s.word, s.heard):
		parts = append(parts, theme.Known.Render("✓ heard “"+s.heard+"”"))
	case s.heard != "":
		parts = append(parts, theme.ErrorText.Render("✗ heard “"+s.heard+"”"))
	}
	parts = append(parts, theme.Hint.Render(fmt.Sprintf("%d in pool · %s", s.size, s.filterDesc)))
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}

func (s *ReviewScreen) viewFilter(width, height int) string {
	tw := "[ ]"
	if s.twisters {
		tw = "[x]"
	}
	body := strings.Join([]string{
		theme.Title.Render("Review filter"),
		"",
		"From  " + s.from.View(),
		"To    " + s.to.View(),
		"",
		tw + " only tongue twisters",
		"",
		theme.Hint.Render("Dates: YYYY-MM-DD, DD/MM/YYYY, DD.MM.YYYY, DD/MM or DD.MM. Leave empty for all."),
	}, "\n")
	return layout.Center(components.Card(body, min(width-4, 70)), width, height)
}
