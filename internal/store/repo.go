package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Word   string    // exact word match
	Action string    // exact action match
}

// Word event actions.
const (
	ActionShown      = "shown"
	ActionKnown      = "known"
	ActionNew        = "new"
	ActionLearned    = "learned"
	ActionRemoved    = "removed"
	ActionRestored   = "restored"
	ActionRenamed    = "renamed"
	ActionAdded      = "added"
	ActionNotes      = "notes"
	ActionExpression = "expression"
	ActionEnriched   = "enriched"
)

// WordEventData captures one change to a word.
type WordEventData struct {
	SessionID string
	Action    string
	Word      string
	Detail    string
}

// WordEvent is a stored WordEventData.
type WordEvent struct {
	Sequence  int64
	Timestamp time.Time
	WordEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ActionCount is the number of events recorded for one action.
type ActionCount struct {
	Action string
	Count  int
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// AppendWordEvent records a change to a word.
	AppendWordEvent(ctx context.Context, data WordEventData) error

	// QueryWordEvents returns word events, newest first.
	QueryWordEvents(ctx context.Context, opts QueryOpts) ([]WordEvent, error)

	// ActionCounts tallies word events per action within opts.
	ActionCounts(ctx context.Context, opts QueryOpts) ([]ActionCount, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
