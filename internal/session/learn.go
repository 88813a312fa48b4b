package session

import (
	"github.com/abhisek/wordz/internal/selection"
	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// StartLearn switches to learn mode and shows the first new word.
func (s *Session) StartLearn() (string, bool) {
	s.Mode = ModeLearn
	s.learn.Reset()
	return s.LearnNext()
}

// LearnCurrent returns the word shown in learn mode, or "".
func (s *Session) LearnCurrent() string {
	return s.learn.Current()
}

// LearnCandidates returns the new words in the active learn order.
func (s *Session) LearnCandidates() []string {
	return selection.OrderedCandidates(s.Model, s.Model.LearnOrder)
}

// LearnNext shows another new word.
func (s *Session) LearnNext() (string, bool) {
	return s.learn.Next(s.Model)
}

// LearnPrevious goes back to the word shown before the current one.
func (s *Session) LearnPrevious() (string, bool) {
	return s.learn.Previous()
}

// LearnMarkKnown records the current word as learned today and moves on.
func (s *Session) LearnMarkKnown() (string, bool) {
	if w := s.learn.Current(); w != "" && s.Model.MarkKnownNoAdvance(w) {
		s.changed(store.ActionLearned, w, s.Model.LearnedLog[w])
	}
	return s.LearnNext()
}

// LearnMarkNew keeps the current word new and moves on.
func (s *Session) LearnMarkNew() (string, bool) {
	if w := s.learn.Current(); w != "" && s.Model.ClassifyNew(w) {
		s.changed(store.ActionNew, w, "")
	}
	return s.LearnNext()
}

// LearnRemove removes the current word and moves on.
func (s *Session) LearnRemove() (string, bool) {
	if w := s.learn.Current(); w != "" {
		s.Remove(w)
	}
	return s.LearnNext()
}

// SetLearnOrder changes how learn mode walks the new words.
func (s *Session) SetLearnOrder(o words.LearnOrder) {
	if s.Model.LearnOrder == o {
		return
	}
	s.Model.LearnOrder = o
	s.learn.Reset()
	s.save()
}
