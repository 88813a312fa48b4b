// Package session drives a learning session: the browse, learn and review
// flows that change the vocabulary model, record what happened and ask
// for the model to be saved.
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordz/internal/selection"
	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// DefaultMaxHistory bounds the browse history when Options leaves it unset.
const DefaultMaxHistory = 300

// Saver persists the model in the background.
type Saver interface {
	SaveAsync(m *words.Model)
}

// Recorder receives activity events.
type Recorder interface {
	AppendWordEvent(ctx context.Context, data store.WordEventData) error
}

// Mode is the flow the session is currently in.
type Mode int

const (
	ModeBrowse Mode = iota // Drawing unseen words
	ModeLearn              // Walking the new words
	ModeReview             // Drawing learned words and expressions
)

func (m Mode) String() string {
	switch m {
	case ModeLearn:
		return "learn"
	case ModeReview:
		return "review"
	default:
		return "browse"
	}
}

// Options configures a Session.
type Options struct {
	// Saver is asked to save after every change. Nil disables saving.
	Saver Saver

	// Events records activity. Nil disables recording.
	Events Recorder

	// Rand drives every random pick. Nil uses a randomly seeded source.
	Rand *rand.Rand

	// MaxHistory bounds the browse history. Zero means DefaultMaxHistory.
	MaxHistory int

	// AutoMarkKnown classifies the shown word as known when the user moves
	// on without classifying it.
	AutoMarkKnown bool

	// Logger receives recording failures. Nil uses slog.Default().
	Logger *slog.Logger
}

// Session tracks the runtime state of one learning session.
type Session struct {
	// ID identifies the session in the activity log.
	ID string

	// Model is the vocabulary being worked on.
	Model *words.Model

	// StartTime is when the session began.
	StartTime time.Time

	// Mode is the active flow.
	Mode Mode

	opts      Options
	log       *slog.Logger
	pool      *selection.Pool
	learn     *selection.LearnPicker
	review    *selection.ReviewPool
	filter    selection.ReviewFilter
	remaining int
	counts    Counts
}

// New starts a session over m.
func New(m *words.Model, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		ID:        uuid.New().String(),
		Model:     m,
		StartTime: time.Now(),
		opts:      opts,
		log:       log,
		pool:      selection.NewPool(opts.Rand),
		learn:     selection.NewLearnPicker(opts.Rand),
	}
	s.remaining = m.Remaining()
	return s
}

// Remaining returns the number of words browse mode can still draw.
func (s *Session) Remaining() int {
	return s.remaining
}

// CurrentWord returns the word shown in browse mode, or "".
func (s *Session) CurrentWord() string {
	return s.Model.CurrentWord
}

// changed is called after every mutation of the model.
func (s *Session) changed(action, word, detail string) {
	s.pool.MarkDirty()
	s.remaining = s.Model.Remaining()
	s.record(action, word, detail)
	s.save()
}

func (s *Session) save() {
	if s.opts.Saver != nil {
		s.opts.Saver.SaveAsync(s.Model)
	}
}

// record appends an activity event. Failures are logged and otherwise
// ignored; the activity log never blocks the session.
func (s *Session) record(action, word, detail string) {
	if action == "" {
		return
	}
	s.counts.add(action)
	if s.opts.Events == nil {
		return
	}
	err := s.opts.Events.AppendWordEvent(context.Background(), store.WordEventData{
		SessionID: s.ID,
		Action:    action,
		Word:      word,
		Detail:    detail,
	})
	if err != nil {
		s.log.Warn("record activity", "action", action, "word", word, "err", err)
	}
}
