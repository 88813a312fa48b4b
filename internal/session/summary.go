package session

import (
	"time"

	"github.com/abhisek/wordz/internal/store"
)

// Counts tallies what happened in a session.
type Counts struct {
	Shown    int
	Known    int
	New      int
	Learned  int
	Removed  int
	Restored int
	Renamed  int
	Added    int
}

func (c *Counts) add(action string) {
	switch action {
	case store.ActionShown:
		c.Shown++
	case store.ActionKnown:
		c.Known++
	case store.ActionNew:
		c.New++
	case store.ActionLearned:
		c.Learned++
	case store.ActionRemoved:
		c.Removed++
	case store.ActionRestored:
		c.Restored++
	case store.ActionRenamed:
		c.Renamed++
	case store.ActionAdded:
		c.Added++
	}
}

// Summary holds the data displayed when a session ends.
type Summary struct {
	ID        string
	Duration  time.Duration
	Counts    Counts
	Remaining int
	Known     int
	New       int
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *Session) *Summary {
	return &Summary{
		ID:        s.ID,
		Duration:  time.Since(s.StartTime),
		Counts:    s.counts,
		Remaining: s.remaining,
		Known:     len(s.Model.Known),
		New:       len(s.Model.New),
	}
}
