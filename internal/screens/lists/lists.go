// Package lists shows the vocabulary grouped by classification.
package lists

import (
	"fmt"
	"strings"

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

// Tab identifies one of the lists.
type Tab int

const (
	TabKnown Tab = iota
	TabNew
	TabRemoved
	TabUser
	TabExpressions
)

var tabNames = []string{"Known", "New", "Removed", "Added", "Expressions"}

func (t Tab) String() string { return tabNames[t] }

type mode int

const (
	modeList mode = iota
	modeSearch
	modeRename
)

// ListsScreen shows one list at a time with search and reclassification.
type ListsScreen struct {
	env    *screen.Env
	tab    Tab
	list   components.List
	mode   mode
	query  string
	search components.TextInput
	rename components.TextInput
	target string
}

var _ screen.Screen = (*ListsScreen)(nil)
var _ screen.KeyHintProvider = (*ListsScreen)(nil)
var _ screen.InputCapturer = (*ListsScreen)(nil)
var _ screen.Resumer = (*ListsScreen)(nil)

// New creates a lists screen on the known tab.
func New(env *screen.Env) *ListsScreen {
	s := &ListsScreen{
		env:    env,
		search: components.NewTextInput("search", 80, 30),
		rename: components.NewTextInput("corrected spelling", 80, 30),
	}
	s.search.Blur()
	s.rename.Blur()
	s.refresh()
	return s
}

func (s *ListsScreen) Init() tea.Cmd { return nil }

func (s *ListsScreen) Title() string { return "Lists · " + s.tab.String() }

func (s *ListsScreen) CapturesInput() bool { return s.mode != modeList }

// Resume reloads the list after an edit.
func (s *ListsScreen) Resume() tea.Cmd {
	s.refresh()
	return nil
}

// Items returns the entries of the active tab after search.
func (s *ListsScreen) Items() []string { return s.list.Items }

func (s *ListsScreen) source() []string {
	m := s.env.Session.Model
	switch s.tab {
	case TabKnown:
		return m.KnownList()
	case TabNew:
		return m.NewList()
	case TabRemoved:
		return m.RemovedList()
	case TabUser:
		return m.UserList()
	default:
		return append([]string(nil), m.Expressions...)
	}
}

func (s *ListsScreen) refresh() {
	s.list.SetItems(words.Search(s.source(), s.query))
}

func (s *ListsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeSearch:
		return []layout.KeyHint{{Key: "Enter", Description: "Apply"}, {Key: "Esc", Description: "Clear"}}
	case modeRename:
		return []layout.KeyHint{{Key: "Enter", Description: "Rename"}, {Key: "Esc", Description: "Cancel"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "List"},
		{Key: "/", Description: "Search"},
		{Key: "e", Description: "Edit"},
	}
	switch s.tab {
	case TabRemoved:
		hints = append(hints, layout.KeyHint{Key: "u", Description: "Restore"})
	case TabExpressions:
		hints = append(hints, layout.KeyHint{Key: "x", Description: "Delete"})
	default:
		hints = append(hints,
			layout.KeyHint{Key: "k", Description: "Known"},
			layout.KeyHint{Key: "n", Description: "New"},
			layout.KeyHint{Key: "x", Description: "Remove"},
			layout.KeyHint{Key: "R", Description: "Rename"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ListsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	switch s.mode {
	case modeSearch:
		return s.updateSearch(msg, kmsg, ok)
	case modeRename:
		return s.updateRename(msg, kmsg, ok)
	}
	if !ok {
		return s, nil
	}

	sess := s.env.Session
	w := s.list.Current()
	switch kmsg.String() {
	case "esc":
		return s, router.Pop()
	case "tab", "right":
		s.tab = (s.tab + 1) % Tab(len(tabNames))
		s.list.Selected = 0
		s.refresh()
		return s, nil
	case "shift+tab", "left":
		s.tab = (s.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		s.list.Selected = 0
		s.refresh()
		return s, nil
	case "/":
		s.mode = modeSearch
		s.search.SetValue(s.query)
		return s, s.search.Focus()
	}
	if w == "" {
		return s, nil
	}

	var status string
	switch kmsg.String() {
	case "e", "enter":
		return s, router.Push(editor.New(s.env, w))
	case "s":
		status = s.env.Speak(w)
	case "k":
		if s.tab != TabRemoved && s.tab != TabExpressions && sess.MoveToKnown(w) {
			status = w + " → known"
		}
	case "n":
		if s.tab != TabRemoved && s.tab != TabExpressions && sess.MoveToNew(w) {
			status = w + " → new"
		}
	case "x", "delete":
		switch s.tab {
		case TabExpressions:
			if sess.RemoveExpression(w) {
				status = "deleted " + w
			}
		case TabRemoved:
		default:
			if sess.Remove(w) {
				status = w + " removed"
			}
		}
	case "u":
		if s.tab == TabRemoved && sess.Restore(w) {
			status = w + " restored"
		}
	case "R":
		if s.tab == TabExpressions || s.tab == TabRemoved {
			return s, nil
		}
		s.mode = modeRename
		s.target = w
		s.rename.SetValue(w)
		return s, s.rename.Focus()
	default:
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		return s, cmd
	}
	s.refresh()
	if status == "" {
		return s, nil
	}
	return s, screen.Status(status)
}

func (s *ListsScreen) updateSearch(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if isKey {
		switch kmsg.String() {
		case "esc":
			s.query = ""
			s.mode = modeList
			s.search.Blur()
			s.refresh()
			return s, nil
		case "enter":
			s.mode = modeList
			s.search.Blur()
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.query = s.search.Value()
	s.list.Selected = 0
	s.refresh()
	return s, cmd
}

func (s *ListsScreen) updateRename(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if isKey {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			s.rename.Blur()
			return s, nil
		case "enter":
			s.mode = modeList
			s.rename.Blur()
			got, err := s.env.Session.Rename(s.target, s.rename.Value())
			s.refresh()
			if err != nil {
				return s, screen.Status(err.Error())
			}
			return s, screen.Status(fmt.Sprintf("%s → %s", s.target, got))
		}
	}
	var cmd tea.Cmd
	s.rename, cmd = s.rename.Update(msg)
	return s, cmd
}

func (s *ListsScreen) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == s.tab {
			parts[i] = theme.Selected.Render(name)
		} else {
			parts[i] = theme.Unselected.Render(name)
		}
	}
	return strings.Join(parts, "  ")
}

func (s *ListsScreen) View(width, height int) string {
	var top []string
	top = append(top, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	switch {
	case s.mode == modeSearch:
		top = append(top, "  / "+s.search.View())
	case s.mode == modeRename:
		top = append(top, "  rename "+s.target+" → "+s.rename.View())
	case s.query != "":
		top = append(top, theme.Hint.Render("  filter: "+s.query))
	default:
		top = append(top, "")
	}

	preview := ""
	if w := s.list.Current(); w != "" {
		n := s.env.Session.Model.NotesFor(w)
		if len(n.Details) > 0 {
			preview = theme.Hint.Render("  " + n.Details[0].Meaning)
		}
	}

	listHeight := max(height-len(top)-3, 1)
	body := s.list.View(width-2, listHeight)
	footer := theme.Hint.Render("  " + s.list.Position())
	return strings.Join(append(top, "", body, preview, footer), "\n")
}
