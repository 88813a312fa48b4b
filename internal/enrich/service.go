// Package enrich fills in word notes (meanings, examples, part of speech,
// IPA) from a language model.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/wordz/internal/llm"
	"github.com/abhisek/wordz/internal/words"
)

// ErrNoProvider is returned when enrichment is requested without a model.
var ErrNoProvider = errors.New("no language model configured")

// Config tunes enrichment requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default request settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3}
}

// Target receives enrichment results. *session.Session implements it.
type Target interface {
	ApplyEnrichment(word string, n words.Notes) bool
}

// Result is the outcome of one asynchronous request.
type Result struct {
	Word  string
	Notes words.Notes
	Err   error
}

// Service asks the model for notes. A nil provider makes every call fail
// with ErrNoProvider, so callers need no special casing.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	gen     int
	busy    bool
	pending *Result
}

// NewService creates an enrichment service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool { return s.provider != nil }

type notesOutput struct {
	IPA     string         `json:"ipa"`
	Details []words.Detail `json:"details"`
}

// Enrich fetches notes for word. existing notes are passed to the model so
// it can skip senses already recorded. The result is cleaned with the same
// rules applied to persisted details.
func (s *Service) Enrich(ctx context.Context, word string, existing words.Notes) (words.Notes, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return words.Notes{}, fmt.Errorf("enrich: %w", words.ErrInvalidWord)
	}
	if s.provider == nil {
		return words.Notes{}, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, "enrich")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(word, existing),
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return words.Notes{}, fmt.Errorf("enrich %q: %w", word, err)
	}

	var out notesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return words.Notes{}, fmt.Errorf("parse enrich response: %w", err)
	}
	return words.Notes{
		Details: words.CleanDetails(out.Details),
		IPA:     strings.Trim(strings.TrimSpace(out.IPA), "/"),
	}, nil
}

// Request starts an asynchronous Enrich. Only one request is tracked: a new
// one supersedes any still running, whose result is then discarded.
func (s *Service) Request(ctx context.Context, word string, existing words.Notes) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.busy = true
	s.pending = nil
	s.mu.Unlock()

	go func() {
		notes, err := s.Enrich(ctx, word, existing)
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.busy = false
		s.pending = &Result{Word: word, Notes: notes, Err: err}
	}()
}

// Busy reports whether a request is in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Consume returns the finished result, if any, and clears it.
func (s *Service) Consume() (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.pending
	s.pending = nil
	return r, r != nil
}

// Apply merges r into t. It reports whether anything was stored.
func Apply(t Target, r *Result) bool {
	if r == nil || r.Err != nil {
		return false
	}
	return t.ApplyEnrichment(r.Word, r.Notes)
}
