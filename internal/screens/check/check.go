// Package check finds the words of a text that are not in the vocabulary.
package check

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/textcheck"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

const loadTimeout = 20 * time.Second

type loadedMsg struct {
	Text string
	Err  error
}

// CheckScreen takes text, a URL or a file path and lists unknown words.
type CheckScreen struct {
	env     *screen.Env
	input   textarea.Model
	report  *textcheck.Report
	results components.List
	loading bool
	err     string
}

var _ screen.Screen = (*CheckScreen)(nil)
var _ screen.InputCapturer = (*CheckScreen)(nil)

// New creates an empty check screen.
func New(env *screen.Env) *CheckScreen {
	ta := textarea.New()
	ta.Placeholder = "paste text, or a URL or file path and press ctrl+o"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(70)
	ta.SetHeight(12)
	return &CheckScreen{env: env, input: ta}
}

func (s *CheckScreen) Init() tea.Cmd { return s.input.Focus() }

func (s *CheckScreen) Title() string { return "Check text" }

func (s *CheckScreen) CapturesInput() bool { return s.report == nil }

// Report returns the last analysis, or nil before one ran.
func (s *CheckScreen) Report() *textcheck.Report { return s.report }

func (s *CheckScreen) KeyHints() []layout.KeyHint {
	if s.report == nil {
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Check"},
			{Key: "Ctrl+O", Description: "Load URL/file"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "a", Description: "Add all"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Edit text"},
	}
}

func load(src string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		text, err := textcheck.Load(ctx, http.DefaultClient, src)
		return loadedMsg{Text: text, Err: err}
	}
}

func (s *CheckScreen) analyze(text string) {
	r := textcheck.Analyze(s.env.Session.Model, text)
	s.report = &r
	s.results = components.NewList(r.Unknown)
	s.input.Blur()
}

func (s *CheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.err = msg.Err.Error()
			return s, nil
		}
		s.err = ""
		s.analyze(msg.Text)
		return s, nil
	case tea.KeyMsg:
		if s.report != nil {
			return s.updateResults(msg)
		}
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "ctrl+s":
			s.analyze(s.input.Value())
			return s, nil
		case "ctrl+o":
			src := strings.TrimSpace(s.input.Value())
			if src == "" || strings.ContainsAny(src, "\n") || s.loading {
				return s, nil
			}
			s.loading = true
			return s, load(src)
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *CheckScreen) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.report = nil
		return s, s.input.Focus()
	case "a":
		added := s.env.Session.AddUnclassified(s.report.Unknown)
		s.report.Present = append(s.report.Present, added...)
		s.report.Unknown = nil
		s.results.SetItems(nil)
		return s, screen.Status(fmt.Sprintf("added %d words", len(added)))
	case "s":
		if w := s.results.Current(); w != "" {
			if st := s.env.Speak(w); st != "" {
				return s, screen.Status(st)
			}
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.results, cmd = s.results.Update(msg)
	return s, cmd
}

func (s *CheckScreen) View(width, height int) string {
	if s.report == nil {
		parts := []string{s.input.View()}
		switch {
		case s.loading:
			parts = append(parts, "", theme.Status.Render("loading..."))
		case s.err != "":
			parts = append(parts, "", theme.ErrorText.Render(s.err))
		}
		return layout.Center(components.Card(lipgloss.JoinVertical(lipgloss.Left, parts...), min(width-4, 76)), width, height)
	}

	r := s.report
	summary := fmt.Sprintf("%d words: %s unknown, %s known, %s removed",
		r.Total(),
		theme.NewWord.Render(fmt.Sprint(len(r.Unknown))),
		theme.Known.Render(fmt.Sprint(len(r.Present))),
		theme.Removed.Render(fmt.Sprint(len(r.Ignored))))
	list := s.results.View(width-4, max(height-4, 1))
	if len(r.Unknown) == 0 {
		list = theme.Hint.Render("  Every word is already in the vocabulary.")
	}
	return strings.Join([]string{"", "  " + summary, "", list}, "\n")
}
