package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-05-15 is a Wednesday.
var today = time.Date(2024, 5, 15, 18, 30, 0, 0, time.Local)

func sampleLog() map[string]string {
	return map[string]string{
		"a": "2024-05-15",
		"b": "2024-05-15",
		"c": "2024-05-13", // Monday, same week
		"d": "2024-05-12", // Sunday, previous week
		"e": "2024-05-01",
		"f": "2024-01-01",
		"g": "2023-12-31",
		"h": "not a date",
		"i": " 2024-05-14 ",
		"j": "2024-05-16", // future
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleLog(), today)

	assert.Equal(t, 2, s.Today)
	assert.Equal(t, 4, s.Week)
	assert.Equal(t, 6, s.Month)
	assert.Equal(t, 7, s.Year)
	assert.Equal(t, 9, s.Total, "only the unparsable date is skipped")
}

func TestSummarize_WeekStartsMonday(t *testing.T) {
	monday := time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC)
	s := Summarize(sampleLog(), monday)
	assert.Equal(t, 1, s.Week)

	sunday := time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC)
	s = Summarize(sampleLog(), sunday)
	assert.Equal(t, 5, s.Week)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, today)
	assert.Zero(t, s.Today+s.Week+s.Month+s.Year+s.Total)
}

func TestLastDays(t *testing.T) {
	s := Summarize(sampleLog(), today)

	days := s.LastDays(4, 0)
	require.Len(t, days, 4)
	assert.Equal(t, "12.05", days[0].Label)
	assert.Equal(t, "15.05", days[3].Label)
	assert.Equal(t, []int{1, 1, 1, 2}, counts(days))
	assert.True(t, days[0].Up)
	assert.True(t, days[3].Up)

	prev := s.LastDays(4, 4)
	assert.Equal(t, "11.05", prev[3].Label)
	assert.Equal(t, 0, prev[3].Count)

	assert.Nil(t, s.LastDays(0, 0))
}

func TestLastDays_TrendDown(t *testing.T) {
	s := Summarize(map[string]string{"a": "2024-05-14", "b": "2024-05-14"}, today)
	days := s.LastDays(2, 0)
	assert.Equal(t, []int{2, 0}, counts(days))
	assert.False(t, days[1].Up)
}

func TestMonths(t *testing.T) {
	s := Summarize(sampleLog(), today)

	months := s.Months(2024)
	require.Len(t, months, 12)
	assert.Equal(t, "Jan", months[0].Label)
	assert.Equal(t, 1, months[0].Count)
	assert.Equal(t, 7, months[4].Count)
	assert.Equal(t, 7, MaxCount(months))

	last := s.Months(2023)
	assert.Equal(t, 1, last[11].Count)
}

func TestDay(t *testing.T) {
	s := Summarize(sampleLog(), today)
	assert.Equal(t, 2, s.Day(today))
	assert.Equal(t, 0, s.Day(today.AddDate(0, 0, -5)))
}

func TestCanGoForward(t *testing.T) {
	assert.False(t, CanGoForward(0))
	assert.True(t, CanGoForward(10))
}

func counts(bs []Bucket) []int {
	out := make([]int, len(bs))
	for i, b := range bs {
		out[i] = b.Count
	}
	return out
}
