// Package editor edits the notes of one word and adds expressions.
package editor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
	"github.com/abhisek/wordz/internal/words"
)

const pollEvery = 150 * time.Millisecond

type enrichTickMsg struct{}

func pollEnrich() tea.Cmd {
	return tea.Tick(pollEvery, func(time.Time) tea.Msg { return enrichTickMsg{} })
}

// detailForm holds the inputs of one meaning.
type detailForm struct {
	meaning  components.TextInput
	examples textarea.Model
	pos      components.CheckList
}

func newDetailForm(d words.Detail) detailForm {
	f := detailForm{
		meaning:  components.NewTextInput("meaning", 0, 60),
		examples: newExamplesArea(),
		pos:      components.NewCheckList(words.POSTags, d.POS),
	}
	f.meaning.SetValue(d.Meaning)
	f.meaning.Blur()
	f.examples.SetValue(strings.Join(d.Examples, "\n"))
	return f
}

func newExamplesArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "examples, one per line"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.Blur()
	return ta
}

func (f detailForm) detail() words.Detail {
	return words.Detail{
		Meaning:  f.meaning.Value(),
		Examples: strings.Split(f.examples.Value(), "\n"),
		POS:      f.pos.Checked(),
	}
}

// fieldsPerDetail is the number of focusable inputs in a detailForm.
const fieldsPerDetail = 3

// EditorScreen edits IPA, the tongue twister flag and the meanings of a
// word. Nothing is stored until the user saves.
type EditorScreen struct {
	env  *screen.Env
	word string

	ipa      components.TextInput
	twister  bool
	details  []detailForm
	focus    int
	renaming bool
	rename   components.TextInput
	waiting  bool
	err      string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)
var _ screen.InputCapturer = (*EditorScreen)(nil)

// New opens the editor on word, prefilled with its stored notes.
func New(env *screen.Env, word string) *EditorScreen {
	s := &EditorScreen{
		env:    env,
		word:   word,
		ipa:    components.NewTextInput("IPA, without slashes", 80, 40),
		rename: components.NewTextInput("corrected spelling", 80, 40),
	}
	s.rename.Blur()
	s.load(env.Session.Model.NotesFor(word))
	return s
}

func (s *EditorScreen) load(n words.Notes) {
	s.ipa.SetValue(n.IPA)
	s.twister = n.TongueTwister
	s.details = s.details[:0]
	for _, d := range n.Details {
		s.details = append(s.details, newDetailForm(d))
	}
	if len(s.details) == 0 {
		s.details = append(s.details, newDetailForm(words.Detail{}))
	}
	s.focus = 0
	s.applyFocus()
}

// Notes returns the notes currently in the form.
func (s *EditorScreen) Notes() words.Notes {
	n := words.Notes{IPA: s.ipa.Value(), TongueTwister: s.twister}
	for _, f := range s.details {
		n.Details = append(n.Details, f.detail())
	}
	n.Details = words.CleanDetails(n.Details)
	return n
}

// Word returns the word being edited.
func (s *EditorScreen) Word() string { return s.word }

func (s *EditorScreen) Init() tea.Cmd {
	return s.ipa.Init()
}

func (s *EditorScreen) Title() string {
	return "Edit · " + s.word
}

func (s *EditorScreen) CapturesInput() bool { return true }

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	if s.renaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Rename"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Ctrl+N", Description: "Add meaning"},
		{Key: "Ctrl+D", Description: "Delete meaning"},
		{Key: "Ctrl+T", Description: "Twister"},
		{Key: "Ctrl+R", Description: "Rename"},
	}
	if s.env.Enrich != nil && s.env.Enrich.Enabled() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Suggest"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
}

func (s *EditorScreen) fieldCount() int {
	return 1 + fieldsPerDetail*len(s.details)
}

// applyFocus moves keyboard focus to the field at s.focus.
func (s *EditorScreen) applyFocus() tea.Cmd {
	s.ipa.Blur()
	for i := range s.details {
		s.details[i].meaning.Blur()
		s.details[i].examples.Blur()
		s.details[i].pos.Focused = false
	}
	if s.focus == 0 {
		return s.ipa.Focus()
	}
	d := &s.details[(s.focus-1)/fieldsPerDetail]
	switch (s.focus - 1) % fieldsPerDetail {
	case 0:
		return d.meaning.Focus()
	case 1:
		return d.examples.Focus()
	default:
		d.pos.Focused = true
		return nil
	}
}

func (s *EditorScreen) currentDetail() int {
	if s.focus == 0 {
		return 0
	}
	return (s.focus - 1) / fieldsPerDetail
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case enrichTickMsg:
		return s, s.checkEnrich()
	case tea.KeyMsg:
		if s.renaming {
			return s.updateRename(msg)
		}
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "ctrl+s":
			s.env.Session.SetNotes(s.word, s.Notes())
			return s, tea.Batch(router.Pop(), screen.Status("saved notes for "+s.word))
		case "tab":
			s.focus = (s.focus + 1) % s.fieldCount()
			return s, s.applyFocus()
		case "shift+tab":
			s.focus = (s.focus + s.fieldCount() - 1) % s.fieldCount()
			return s, s.applyFocus()
		case "ctrl+t":
			s.twister = !s.twister
			return s, nil
		case "ctrl+n":
			s.details = append(s.details, newDetailForm(words.Detail{}))
			s.focus = 1 + fieldsPerDetail*(len(s.details)-1)
			return s, s.applyFocus()
		case "ctrl+d":
			return s, s.deleteDetail()
		case "ctrl+r":
			s.renaming = true
			s.rename.SetValue(s.word)
			return s, s.rename.Focus()
		case "ctrl+e":
			return s, s.startEnrich()
		}
	}
	return s.forward(msg)
}

func (s *EditorScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focus == 0 {
		s.ipa, cmd = s.ipa.Update(msg)
		return s, cmd
	}
	d := &s.details[s.currentDetail()]
	switch (s.focus - 1) % fieldsPerDetail {
	case 0:
		d.meaning, cmd = d.meaning.Update(msg)
	case 1:
		d.examples, cmd = d.examples.Update(msg)
	default:
		d.pos, cmd = d.pos.Update(msg)
	}
	return s, cmd
}

func (s *EditorScreen) deleteDetail() tea.Cmd {
	i := s.currentDetail()
	s.details = append(s.details[:i], s.details[i+1:]...)
	if len(s.details) == 0 {
		s.details = append(s.details, newDetailForm(words.Detail{}))
	}
	if s.focus >= s.fieldCount() {
		s.focus = s.fieldCount() - 1
	}
	return s.applyFocus()
}

func (s *EditorScreen) updateRename(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.renaming = false
		s.rename.Blur()
		return s, s.applyFocus()
	case "enter":
		target, err := s.env.Session.Rename(s.word, s.rename.Value())
		if err != nil {
			s.err = err.Error()
			return s, nil
		}
		old := s.word
		s.word = target
		s.renaming = false
		s.err = ""
		s.rename.Blur()
		s.load(s.env.Session.Model.NotesFor(target))
		return s, tea.Batch(s.applyFocus(), screen.Status(fmt.Sprintf("%s → %s", old, target)))
	}
	var cmd tea.Cmd
	s.rename, cmd = s.rename.Update(msg)
	return s, cmd
}

func (s *EditorScreen) startEnrich() tea.Cmd {
	if s.env.Enrich == nil || !s.env.Enrich.Enabled() {
		return screen.Status("no LLM provider configured")
	}
	if s.waiting {
		return nil
	}
	s.waiting = true
	s.err = ""
	s.env.Enrich.Request(context.Background(), s.word, s.Notes())
	return pollEnrich()
}

// checkEnrich fills empty fields of the form with a finished suggestion.
// The user still has to save.
func (s *EditorScreen) checkEnrich() tea.Cmd {
	r, ok := s.env.Enrich.Consume()
	if !ok {
		if s.env.Enrich.Busy() {
			return pollEnrich()
		}
		s.waiting = false
		return nil
	}
	s.waiting = false
	if r.Err != nil {
		s.err = r.Err.Error()
		return nil
	}
	if !strings.EqualFold(r.Word, s.word) {
		return nil
	}

	cur := s.Notes()
	if cur.IPA == "" {
		cur.IPA = r.Notes.IPA
	}
	if len(cur.Details) == 0 {
		cur.Details = r.Notes.Details
	}
	s.load(cur)
	return screen.Status("suggestion added, ctrl+s to keep it")
}

func (s *EditorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Word.Render(s.word))
	b.WriteString("  ")
	b.WriteString(components.StateBadge(s.env.Session.Model.State(s.word)))
	b.WriteString("\n\n")

	if s.renaming {
		b.WriteString("Rename to  " + s.rename.View() + "\n")
		if s.err != "" {
			b.WriteString(theme.ErrorText.Render(s.err) + "\n")
		}
		return layout.Center(components.Card(b.String(), min(width-4, 76)), width, height)
	}

	b.WriteString("IPA  " + s.ipa.View() + "\n")
	tw := "[ ]"
	if s.twister {
		tw = "[x]"
	}
	b.WriteString(tw + " tongue twister\n")

	for i, d := range s.details {
		label := fmt.Sprintf("Meaning %d", i+1)
		if s.focus > 0 && s.currentDetail() == i {
			label = theme.Selected.Render(label)
		} else {
			label = theme.Subtitle.Render(label)
		}
		b.WriteString("\n" + label + "\n")
		b.WriteString(d.meaning.View() + "\n")
		b.WriteString(d.examples.View() + "\n")
		b.WriteString(d.pos.View() + "\n")
	}

	switch {
	case s.waiting:
		b.WriteString("\n" + theme.Status.Render("asking for suggestions..."))
	case s.err != "":
		b.WriteString("\n" + theme.ErrorText.Render(s.err))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(b.String(), min(width-4, 76)))
}
