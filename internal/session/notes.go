package session

import (
	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// SetNotes replaces the notes of w.
func (s *Session) SetNotes(w string, n words.Notes) {
	s.Model.SetNotes(w, n)
	s.changed(store.ActionNotes, words.Key(w), "")
}

// MergeNotes stores only the filled fields of n.
func (s *Session) MergeNotes(w string, n words.Notes) bool {
	if !s.Model.MergeNotes(w, n) {
		return false
	}
	s.changed(store.ActionNotes, words.Key(w), "merge")
	return true
}

// AddExpression stores a phrase with one meaning.
func (s *Session) AddExpression(phrase, meaning string, examples []string) error {
	if _, err := s.Model.AddExpression(phrase, meaning, examples); err != nil {
		return err
	}
	s.changed(store.ActionExpression, words.Key(phrase), "add")
	return nil
}

// RemoveExpression drops a phrase and its notes.
func (s *Session) RemoveExpression(phrase string) bool {
	if !s.Model.RemoveExpression(phrase) {
		return false
	}
	s.changed(store.ActionExpression, words.Key(phrase), "remove")
	return true
}

// ApplyEnrichment merges model-generated notes into w.
func (s *Session) ApplyEnrichment(w string, n words.Notes) bool {
	if !s.Model.MergeNotes(w, n) {
		return false
	}
	s.changed(store.ActionEnriched, words.Key(w), "")
	return true
}
