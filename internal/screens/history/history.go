// Package history lists recorded word events.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// pageSize is the number of events loaded per filter.
const pageSize = 200

// Filters are the action tabs; the empty action shows everything.
var Filters = []string{
	"",
	store.ActionKnown,
	store.ActionNew,
	store.ActionRemoved,
	store.ActionRestored,
	store.ActionRenamed,
	store.ActionAdded,
	store.ActionNotes,
	store.ActionEnriched,
}

type historyLoadedMsg struct {
	Action string
	Events []store.WordEvent
	Counts map[string]int
	Err    error
}

// HistoryScreen displays the activity log newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	filter    int
	events    []store.WordEvent
	counts    map[string]int
	selected  int
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	action := Filters[s.filter]
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		events, err := repo.QueryWordEvents(ctx, store.QueryOpts{Limit: pageSize, Action: action})
		if err != nil {
			return historyLoadedMsg{Action: action, Err: err}
		}

		counts := make(map[string]int)
		// Counts are decoration; a failure leaves the tabs without numbers.
		if list, err := repo.ActionCounts(ctx, store.QueryOpts{}); err == nil {
			for _, c := range list {
				counts[c.Action] = c.Count
				counts[""] += c.Count
			}
		}
		return historyLoadedMsg{Action: action, Events: events, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Action != Filters[s.filter] {
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
			s.counts = msg.Counts
		}
		s.selected, s.offset = 0, 0
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "tab", "right":
			s.filter = (s.filter + 1) % len(Filters)
			s.loaded = false
			return s, s.load()
		case "shift+tab", "left":
			s.filter = (s.filter + len(Filters) - 1) % len(Filters)
			s.loaded = false
			return s, s.load()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func filterLabel(action string) string {
	if action == "" {
		return "all"
	}
	return action
}

func (s *HistoryScreen) renderTabs() string {
	parts := make([]string, 0, len(Filters))
	for i, a := range Filters {
		label := filterLabel(a)
		if n, ok := s.counts[a]; ok {
			label = fmt.Sprintf("%s %d", label, n)
		}
		if i == s.filter {
			parts = append(parts, theme.Selected.Render(label))
		} else {
			parts = append(parts, theme.Unselected.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func actionStyle(action string) lipgloss.Style {
	switch action {
	case store.ActionKnown, store.ActionLearned:
		return theme.Known
	case store.ActionNew, store.ActionRestored:
		return theme.NewWord
	case store.ActionRemoved:
		return theme.Removed
	default:
		return theme.Body
	}
}

func (s *HistoryScreen) View(width, height int) string {
	tabs := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs())

	if s.errMsg != "" {
		return tabs + "\n\n" + lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("Error: "+s.errMsg)
	}
	if !s.loaded {
		return tabs + "\n\n" + lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Loading history...")
	}
	if len(s.events) == 0 {
		return tabs + "\n\n" + lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing recorded yet.")
	}

	rows := max(height-3, 1)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
	end := min(s.offset+rows, len(s.events))

	var b strings.Builder
	for i := s.offset; i < end; i++ {
		e := s.events[i]
		line := fmt.Sprintf("%s  %s  %s",
			theme.Hint.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
			actionStyle(e.Action).Render(fmt.Sprintf("%-10s", e.Action)),
			e.Word)
		if e.Detail != "" {
			line += theme.Hint.Render("  (" + e.Detail + ")")
		}
		if i == s.selected {
			line = theme.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return tabs + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimRight(b.String(), "\n"))
}
