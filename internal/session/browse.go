package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// Next shows another unseen word. With AutoMarkKnown set, a current word
// the user left unclassified becomes known first. It reports false when
// no word is left, in which case the current word is cleared.
func (s *Session) Next() (string, bool) {
	m := s.Model
	if prev := m.CurrentWord; s.opts.AutoMarkKnown && prev != "" &&
		m.Contains(prev) && m.State(prev) == words.StateUnclassified {
		m.ClassifyKnown(prev)
		s.pool.MarkDirty()
		s.record(store.ActionKnown, prev, "auto")
	}

	w, ok := s.draw()
	if !ok {
		m.CurrentWord = ""
		s.remaining = m.Remaining()
		s.save()
		return "", false
	}
	m.PushHistory(w, s.opts.MaxHistory)
	if s.remaining > 0 {
		s.remaining--
	}
	s.record(store.ActionShown, w, "")
	s.save()
	return w, true
}

// draw pulls from the pool, skipping words that stopped being eligible
// since the pool was built.
func (s *Session) draw() (string, bool) {
	for {
		w, ok := s.pool.Draw(s.Model)
		if !ok {
			return "", false
		}
		if s.Model.Eligible(w) {
			return w, true
		}
	}
}

// Previous steps back one entry in the browse history.
func (s *Session) Previous() (string, bool) {
	m := s.Model
	if m.HistoryIndex <= 0 || m.HistoryIndex >= len(m.History) {
		return "", false
	}
	m.HistoryIndex--
	m.CurrentWord = m.History[m.HistoryIndex]
	s.save()
	return m.CurrentWord, true
}

// MarkKnown classifies the current word as known without advancing.
func (s *Session) MarkKnown() bool {
	return s.MoveToKnown(s.Model.CurrentWord)
}

// MarkNew classifies the current word as new without advancing.
func (s *Session) MarkNew() bool {
	return s.MoveToNew(s.Model.CurrentWord)
}

// MoveToKnown classifies w as known.
func (s *Session) MoveToKnown(w string) bool {
	if !s.Model.ClassifyKnown(w) {
		return false
	}
	s.changed(store.ActionKnown, words.Key(w), "")
	return true
}

// MoveToNew classifies w as new.
func (s *Session) MoveToNew(w string) bool {
	if !s.Model.ClassifyNew(w) {
		return false
	}
	s.changed(store.ActionNew, words.Key(w), "")
	return true
}

// Remove takes w out of every flow until it is restored.
func (s *Session) Remove(w string) bool {
	if !s.Model.Remove(w) {
		return false
	}
	s.changed(store.ActionRemoved, words.Key(w), "")
	return true
}

// RemoveCurrent removes the current word and shows the next one.
func (s *Session) RemoveCurrent() (string, bool) {
	cur := s.Model.CurrentWord
	if cur == "" {
		return "", false
	}
	s.Remove(cur)
	// The removed word must not be auto-marked on the way out.
	s.Model.CurrentWord = ""
	return s.Next()
}

// Restore brings a removed word back as new and makes it the current word.
func (s *Session) Restore(w string) bool {
	if !s.Model.Restore(w) {
		return false
	}
	s.Model.PushHistory(w, s.opts.MaxHistory)
	s.changed(store.ActionRestored, words.Key(w), "")
	return true
}

// Rename corrects the spelling of old, merging it into an existing word
// when the corrected form is already in the vocabulary. It returns the
// word that now stands for old.
func (s *Session) Rename(old, raw string) (string, error) {
	if !s.Model.Contains(old) {
		return "", fmt.Errorf("rename %q: %w", old, words.ErrUnknownWord)
	}
	nw, err := s.Model.RenameOrMerge(old, raw)
	if err != nil {
		return "", err
	}
	s.changed(store.ActionRenamed, nw, words.Key(old))
	return nw, nil
}

// AddWords adds the words in raw, one per line, as new user words. It
// returns how many were added.
func (s *Session) AddWords(raw string) int {
	before := s.Model.User.Clone()
	n := s.Model.AddWords(raw)
	if n == 0 {
		return 0
	}
	var added []string
	for w := range s.Model.User {
		if !before.Has(w) {
			added = append(added, w)
		}
	}
	slices.Sort(added)
	s.pool.MarkDirty()
	s.remaining = s.Model.Remaining()
	for _, w := range added {
		s.record(store.ActionAdded, w, "")
	}
	s.save()
	return n
}

// AddUnclassified adds list to the vocabulary without classifying it, so
// browse mode will surface the words. It returns the words added.
func (s *Session) AddUnclassified(list []string) []string {
	added := s.Model.AddUnclassified(list)
	if len(added) == 0 {
		return nil
	}
	s.pool.MarkDirty()
	s.remaining = s.Model.Remaining()
	for _, w := range added {
		s.record(store.ActionAdded, w, "unclassified")
	}
	s.save()
	return added
}
