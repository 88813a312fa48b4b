// Package stats charts how many words were learned over time.
package stats

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/dashboard"
	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/ui/components"
	"github.com/abhisek/wordz/internal/ui/layout"
	"github.com/abhisek/wordz/internal/ui/theme"
)

const (
	colWidth    = 7
	chartHeight = 6
)

// StatsScreen shows totals, a daily chart and a monthly chart.
type StatsScreen struct {
	env    *screen.Env
	stats  *dashboard.Stats
	offset int
	year   int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New computes the stats from the learned log.
func New(env *screen.Env) *StatsScreen {
	now := time.Now
	if env.Session.Model.Now != nil {
		now = env.Session.Model.Now
	}
	st := dashboard.Summarize(env.Session.Model.LearnedLog, now())
	return &StatsScreen{env: env, stats: st, year: st.TodayDate().Year()}
}

func (s *StatsScreen) Init() tea.Cmd { return nil }

func (s *StatsScreen) Title() string { return "Stats" }

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Days"},
		{Key: "↑↓", Description: "Year"},
		{Key: "Esc", Description: "Back"},
	}
}

// days is the number of daily bars that fit in width.
func days(width int) int {
	return min(max((width-4)/colWidth, 3), 14)
}

// Offset returns how many days back the daily chart ends.
func (s *StatsScreen) Offset() int { return s.offset }

// Year returns the year of the monthly chart.
func (s *StatsScreen) Year() int { return s.year }

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, router.Pop()
	case "left", "h":
		s.offset += 7
	case "right", "l":
		if dashboard.CanGoForward(s.offset) {
			s.offset = max(s.offset-7, 0)
		}
	case "up", "k":
		if s.year < s.stats.TodayDate().Year() {
			s.year++
		}
	case "down", "j":
		s.year--
	}
	return s, nil
}

func toBars(bs []dashboard.Bucket) []components.Bar {
	out := make([]components.Bar, len(bs))
	for i, b := range bs {
		out[i] = components.Bar{Label: b.Label, Value: b.Count, Up: b.Up}
	}
	return out
}

func (s *StatsScreen) View(width, height int) string {
	st := s.stats
	totals := strings.Join([]string{
		fmt.Sprintf("today %s", theme.Known.Render(fmt.Sprint(st.Today))),
		fmt.Sprintf("week %s", theme.Known.Render(fmt.Sprint(st.Week))),
		fmt.Sprintf("month %s", theme.Known.Render(fmt.Sprint(st.Month))),
		fmt.Sprintf("year %s", theme.Known.Render(fmt.Sprint(st.Year))),
		fmt.Sprintf("total %s", theme.Known.Render(fmt.Sprint(st.Total))),
	}, "   ")

	daily := components.BarChart{Bars: toBars(st.LastDays(days(width), s.offset)), Height: chartHeight, ColWidth: colWidth}
	monthCol := min(max((width-4)/12, 4), colWidth)
	monthly := components.BarChart{Bars: toBars(st.Months(s.year)), Height: chartHeight, ColWidth: monthCol}

	dayTitle := "Last days"
	if s.offset > 0 {
		dayTitle = fmt.Sprintf("Days, %d back", s.offset)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		totals,
		"",
		theme.Subtitle.Render(dayTitle),
		daily.View(),
		"",
		theme.Subtitle.Render(fmt.Sprintf("Months of %d", s.year)),
		monthly.View(),
	)
	return layout.Center(body, width, height)
}
