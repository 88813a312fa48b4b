package stats

import (
	"strings"
	"testing"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen/screentest"
)

func newStats() *StatsScreen {
	env := screentest.Env("apple", "banana", "cherry")
	log := env.Session.Model.LearnedLog
	log["apple"] = "2024-05-10"
	log["banana"] = "2024-05-09"
	log["cherry"] = "2023-11-02"
	return New(env)
}

func TestStats_Totals(t *testing.T) {
	s := newStats()
	if s.stats.Today != 1 || s.stats.Year != 2 || s.stats.Total != 3 {
		t.Errorf("stats = %+v", *s.stats)
	}
	if s.Year() != 2024 {
		t.Errorf("year = %d, want 2024", s.Year())
	}
	view := s.View(100, 40)
	for _, want := range []string{"today", "total", "Last days", "Months of 2024"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStats_DayOffset(t *testing.T) {
	s := newStats()

	s.Update(screentest.Key("right"))
	if s.Offset() != 0 {
		t.Errorf("cannot go past today, offset = %d", s.Offset())
	}
	s.Update(screentest.Key("left"))
	s.Update(screentest.Key("h"))
	if s.Offset() != 14 {
		t.Errorf("offset = %d, want 14", s.Offset())
	}
	if !strings.Contains(s.View(100, 40), "Days, 14 back") {
		t.Error("expected the offset in the chart title")
	}
	s.Update(screentest.Key("l"))
	if s.Offset() != 7 {
		t.Errorf("offset = %d, want 7", s.Offset())
	}
}

func TestStats_YearBounds(t *testing.T) {
	s := newStats()

	s.Update(screentest.Key("up"))
	if s.Year() != 2024 {
		t.Errorf("year = %d, cannot go past the current year", s.Year())
	}
	s.Update(screentest.Key("down"))
	if s.Year() != 2023 {
		t.Errorf("year = %d, want 2023", s.Year())
	}
	if !strings.Contains(s.View(100, 40), "Months of 2023") {
		t.Error("expected the previous year in the view")
	}
	s.Update(screentest.Key("k"))
	if s.Year() != 2024 {
		t.Errorf("year = %d, want 2024", s.Year())
	}
}

func TestStats_Days(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 3},
		{60, 8},
		{200, 14},
	}
	for _, tt := range tests {
		if got := days(tt.width); got != tt.want {
			t.Errorf("days(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestStats_EscPops(t *testing.T) {
	_, cmd := newStats().Update(screentest.Key("esc"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
