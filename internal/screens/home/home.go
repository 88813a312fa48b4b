package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/dashboard"
	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screens/addwords"
	"github.com/abhisek/wordz/internal/screens/browse"
	"github.com/abhisek/wordz/internal/screens/check"
	"github.com/abhisek/wordz/internal/screens/editor"
	"github.com/abhisek/wordz/internal/screens/history"
	"github.com/abhisek/wordz/internal/screens/learn"
	"github.com/abhisek/wordz/internal/screens/lists"
	"github.com/abhisek/wordz/internal/screens/review"
	"github.com/abhisek/wordz/internal/screens/stats"
	"github.com/abhisek/wordz/internal/screens/summary"
	"github.com/abhisek/wordz/internal/session"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
	sum  homeStats
}

type homeStats struct {
	vocab, known, fresh, removed, remaining, today, week int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(build()) }
	}
	items := []components.MenuItem{
		{Label: "Browse words", Hotkey: "b", Action: push(func() screen.Screen { return browse.New(env) })},
		{Label: "Learn new words", Hotkey: "l", Action: push(func() screen.Screen { return learn.New(env) })},
		{Label: "Review", Hotkey: "r", Action: push(func() screen.Screen { return review.New(env) })},
		{Label: "Word lists", Hotkey: "w", Action: push(func() screen.Screen { return lists.New(env) })},
		{Label: "Add words", Hotkey: "a", Action: push(func() screen.Screen { return addwords.New(env) })},
		{Label: "Add expression", Hotkey: "x", Action: push(func() screen.Screen { return editor.NewExpression(env) })},
		{Label: "Check a text", Hotkey: "c", Action: push(func() screen.Screen { return check.New(env) })},
		{Label: "Statistics", Hotkey: "s", Action: push(func() screen.Screen { return stats.New(env) })},
		{Label: "Activity history", Hotkey: "h", Action: push(func() screen.Screen { return history.New(env.Events) }), Disabled: env.Events == nil},
		{Label: "Quit", Hotkey: "q", Action: push(func() screen.Screen { return summary.New(session.BuildSummary(env.Session)) })},
	}
	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

func (h *HomeScreen) refresh() {
	m := h.env.Session.Model
	d := dashboard.Summarize(m.LearnedLog, m.Now())
	h.sum = homeStats{
		vocab:     m.Size(),
		known:     len(m.KnownList()),
		fresh:     len(m.NewList()),
		removed:   len(m.Removed),
		remaining: h.env.Session.Remaining(),
		today:     d.Today,
		week:      d.Week,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume recomputes the counters after a sub-screen changed the model.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-10, 30), 60)

	title := theme.Title.Width(cw).Render("wordz") + "\n" +
		theme.Subtitle.Width(cw).Render("your personal vocabulary trainer")

	s := h.sum
	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			theme.Known.Render(fmt.Sprintf("%d known", s.known)),
			theme.NewWord.Render(fmt.Sprintf("%d to learn", s.fresh)),
			theme.Removed.Render(fmt.Sprintf("%d removed", s.removed))),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d of %d words not yet seen", s.remaining, s.vocab)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("learned today %d, this week %d", s.today, s.week)),
		"",
		components.NewProgressBar("seen", s.vocab-s.remaining, s.vocab, cw-6).View(),
	}
	card := components.Card(strings.Join(lines, "\n"), cw)

	content := strings.Join([]string{title, card, h.menu.View()}, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
