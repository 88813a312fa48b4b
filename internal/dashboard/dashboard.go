// Package dashboard aggregates the learned-word log into per-period
// counts.
package dashboard

import (
	"strings"
	"time"

	"github.com/abhisek/wordz/internal/words"
)

// Stats holds per-day learned counts relative to a fixed today.
type Stats struct {
	today time.Time
	byDay map[string]int

	Today int
	Week  int
	Month int
	Year  int
	Total int
}

// Bucket is one bar of a chart. Up is false when the count dropped
// against the previous bucket.
type Bucket struct {
	Label string
	Start time.Time
	Count int
	Up    bool
}

// Summarize counts learned dates. Dates that do not parse as
// words.DateLayout are skipped.
func Summarize(learnedLog map[string]string, today time.Time) *Stats {
	s := &Stats{
		today: dateOf(today),
		byDay: make(map[string]int),
	}
	for _, ds := range learnedLog {
		d, err := time.Parse(words.DateLayout, strings.TrimSpace(ds))
		if err != nil {
			continue
		}
		s.byDay[d.Format(words.DateLayout)]++
	}

	t := s.today
	weekday := (int(t.Weekday()) + 6) % 7 // Monday is 0
	s.Today = s.sum(t, t)
	s.Week = s.sum(t.AddDate(0, 0, -weekday), t)
	s.Month = s.sum(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), t)
	s.Year = s.sum(time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC), t)
	for _, n := range s.byDay {
		s.Total += n
	}
	return s
}

// Day returns the count for one date.
func (s *Stats) Day(d time.Time) int {
	return s.byDay[dateOf(d).Format(words.DateLayout)]
}

// sum counts the inclusive range [from, to].
func (s *Stats) sum(from, to time.Time) int {
	total := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		total += s.byDay[d.Format(words.DateLayout)]
	}
	return total
}

// LastDays returns n daily buckets, oldest first, ending offset days
// before today.
func (s *Stats) LastDays(n, offset int) []Bucket {
	if n <= 0 {
		return nil
	}
	end := s.today.AddDate(0, 0, -max(offset, 0))
	out := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := end.AddDate(0, 0, -i)
		out = append(out, Bucket{Label: d.Format("02.01"), Start: d, Count: s.sum(d, d)})
	}
	markTrend(out)
	return out
}

// Months returns the twelve monthly buckets of year.
func (s *Stats) Months(year int) []Bucket {
	out := make([]Bucket, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		out = append(out, Bucket{Label: start.Format("Jan"), Start: start, Count: s.sum(start, end)})
	}
	markTrend(out)
	return out
}

// CanGoForward reports whether a day window at offset has a newer window.
func CanGoForward(offset int) bool { return offset > 0 }

// TodayDate returns the reference date.
func (s *Stats) TodayDate() time.Time { return s.today }

func markTrend(bs []Bucket) {
	for i := range bs {
		bs[i].Up = i == 0 || bs[i].Count >= bs[i-1].Count
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MaxCount returns the largest bucket count.
func MaxCount(bs []Bucket) int {
	m := 0
	for _, b := range bs {
		m = max(m, b.Count)
	}
	return m
}
