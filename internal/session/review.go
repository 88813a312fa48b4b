package session

import (
	"github.com/abhisek/wordz/internal/selection"
)

// StartReview switches to review mode with a pool built from f and
// returns the pool size.
func (s *Session) StartReview(f selection.ReviewFilter) int {
	s.Mode = ModeReview
	s.filter = f
	today := s.Model.Now
	if today == nil {
		s.review = selection.NewReviewPool(s.Model, f, s.StartTime, s.opts.Rand)
	} else {
		s.review = selection.NewReviewPool(s.Model, f, today(), s.opts.Rand)
	}
	return s.review.Len()
}

// ReviewPool returns the active review pool, or nil outside review mode.
func (s *Session) ReviewPool() *selection.ReviewPool {
	return s.review
}

// ReviewFilter returns the filter of the last review.
func (s *Session) ReviewFilter() selection.ReviewFilter {
	return s.filter
}

// ReviewNext draws a word to review.
func (s *Session) ReviewNext() (string, bool) {
	if s.review == nil {
		return "", false
	}
	return s.review.Draw()
}

// Browse switches back to browse mode.
func (s *Session) Browse() {
	s.Mode = ModeBrowse
	s.review = nil
}
