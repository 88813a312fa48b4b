package screen

import (
	"github.com/abhisek/wordz/internal/enrich"
	"github.com/abhisek/wordz/internal/session"
	"github.com/abhisek/wordz/internal/speech"
	"github.com/abhisek/wordz/internal/store"
)

// Env carries the services shared by all screens. Events, Enrich and
// Speech may be nil when unavailable.
type Env struct {
	Session *session.Session
	Events  store.EventRepo
	Enrich  *enrich.Service
	Speech  *speech.Service
}

// Speak pronounces text when speech is configured and returns a status
// message for the footer.
func (e *Env) Speak(text string) string {
	if e.Speech == nil {
		return "speech is not configured"
	}
	if err := e.Speech.Speak(text); err != nil {
		return err.Error()
	}
	return ""
}
