// Package speech pronounces words and transcribes the user's attempts.
// Engines load lazily in the background; until they are ready every call
// returns ErrLoading instead of blocking.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
)

var (
	// ErrLoading is returned while the engine is still initializing.
	ErrLoading = errors.New("speech engine is loading, try again shortly")
	// ErrUnavailable is returned when no engine can be used at all.
	ErrUnavailable = errors.New("speech engine unavailable")
)

// Engine does the actual synthesis and recognition.
type Engine interface {
	Init(ctx context.Context) error
	Speak(ctx context.Context, text string) error
	Transcribe(ctx context.Context, d time.Duration) (string, error)
}

type state int

const (
	stateIdle state = iota
	stateLoading
	stateReady
)

// Service serializes access to an Engine.
type Service struct {
	engine Engine
	log    *slog.Logger

	mu      sync.Mutex
	state   state
	initErr error
	stop    context.CancelFunc
}

// NewService wraps engine. A nil logger means slog.Default().
func NewService(engine Engine, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{engine: engine, log: log}
}

// InitAsync starts loading the engine unless it is loading or ready. A
// failed load leaves the service idle so the next call retries.
func (s *Service) InitAsync() {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return
	}
	s.state = stateLoading
	s.mu.Unlock()

	go func() {
		err := s.engine.Init(context.Background())
		s.mu.Lock()
		defer s.mu.Unlock()
		s.initErr = err
		if err != nil {
			s.state = stateIdle
			s.log.Warn("speech engine init failed", "err", err)
			return
		}
		s.state = stateReady
	}()
}

// Ready reports whether the engine has loaded.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// Err returns the error of the last failed load, if any.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initErr
}

// Speak pronounces text in the background, interrupting anything still
// playing. Before the engine is ready it starts loading and returns
// ErrLoading.
func (s *Service) Speak(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !s.Ready() {
		s.InitAsync()
		return ErrLoading
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.stop != nil {
		s.stop()
	}
	s.stop = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		if err := s.engine.Speak(ctx, text); err != nil && ctx.Err() == nil {
			s.log.Warn("speak failed", "err", err)
		}
	}()
	return nil
}

// Stop interrupts playback.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// RecordAndTranscribe records for d and passes the recognized text to cb
// from another goroutine. Before the engine is ready cb gets ErrLoading.
func (s *Service) RecordAndTranscribe(d time.Duration, cb func(text string, err error)) {
	go func() {
		if !s.Ready() {
			s.InitAsync()
			cb("", ErrLoading)
			return
		}
		text, err := s.engine.Transcribe(context.Background(), d)
		cb(strings.TrimSpace(text), err)
	}()
}
