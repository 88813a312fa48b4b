// Package progress owns the on-disk lifecycle of the vocabulary state:
// loading at startup, debounced background saves, the final synchronous
// save and change-triggered backups.
package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/wordz/internal/snapshot"
	"github.com/abhisek/wordz/internal/words"
)

// DefaultDebounce is the quiet period before a scheduled save runs.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Store. Zero values pick defaults.
type Options struct {
	Debounce time.Duration
	Reporter Reporter
	Now      func() time.Time
}

// Store persists a words.Model to a single JSON file.
//
// SaveAsync coalesces bursts of calls into one background write. Each
// call captures the model on the caller's goroutine, so the background
// writer never touches the live model. A call arriving while a write is
// running is picked up by one follow-up write once it finishes.
type Store struct {
	path     string
	base     []string
	debounce time.Duration
	reporter Reporter
	now      func() time.Time

	mu        sync.Mutex
	scheduled bool
	saving    bool
	timer     *time.Timer
	pending   *pendingDoc
	gen       uint64
	inflight  sync.WaitGroup

	writeMu sync.Mutex
	written uint64
}

type pendingDoc struct {
	gen uint64
	doc snapshot.Document
}

// New creates a store for the progress file at path. base is the base
// dictionary that Load merges with the persisted user words.
func New(path string, base []string, opts Options) *Store {
	s := &Store{
		path:     path,
		base:     base,
		debounce: opts.Debounce,
		reporter: opts.Reporter,
		now:      opts.Now,
	}
	if s.debounce <= 0 {
		s.debounce = DefaultDebounce
	}
	if s.reporter == nil {
		s.reporter = SlogReporter(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Path returns the progress file path.
func (s *Store) Path() string { return s.path }

// TempPath returns the sibling file writes go through before the rename.
func (s *Store) TempPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".tmp"
}

// Base returns the base dictionary the store was created with.
func (s *Store) Base() []string { return s.base }

// Load reads and decodes the progress file. The returned model is always
// usable: when the file is missing (ErrNoState) or unreadable (*Error) it
// is a fresh model over the base dictionary, and the file is left as is.
func (s *Store) Load() (*words.Model, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return words.New(s.base), ErrNoState
	}
	if err != nil {
		e := &Error{Kind: KindLoad, Path: s.path, Err: err}
		s.reporter.Report(e)
		return words.New(s.base), e
	}
	if cerr := snapshot.Check(data); cerr != nil {
		s.reporter.Report(&Error{Kind: KindSchema, Path: s.path, Err: cerr})
	}
	m, err := snapshot.Decode(data, s.base)
	if err != nil {
		e := &Error{Kind: KindDecode, Path: s.path, Err: err}
		s.reporter.Report(e)
		return words.New(s.base), e
	}
	return m, nil
}

// SaveAsync schedules a debounced background save of m and returns
// immediately. Write failures are reported, not returned.
func (s *Store) SaveAsync(m *words.Model) {
	doc := snapshot.Encode(m)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.pending = &pendingDoc{gen: s.gen, doc: doc}
	if s.scheduled {
		return
	}
	s.scheduled = true
	s.inflight.Add(1)
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

func (s *Store) fire() {
	defer s.inflight.Done()

	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.saving = p != nil
	if p == nil {
		s.scheduled = false
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if err := s.write(p); err != nil {
		s.reporter.Report(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if s.pending == nil {
		s.scheduled = false
		return
	}
	s.inflight.Add(1)
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

// SaveSync writes m immediately and cancels any scheduled save. A write
// already running in the background cannot overwrite this one afterwards.
func (s *Store) SaveSync(m *words.Model) error {
	doc := snapshot.Encode(m)

	s.mu.Lock()
	s.gen++
	p := &pendingDoc{gen: s.gen, doc: doc}
	s.pending = nil
	if s.scheduled && !s.saving && s.timer != nil && s.timer.Stop() {
		s.scheduled = false
		s.inflight.Done()
	}
	s.mu.Unlock()

	if err := s.write(p); err != nil {
		return err
	}
	return nil
}

// Wait blocks until no background save is scheduled or running.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Pending reports whether a background save is scheduled or running.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

func (s *Store) write(p *pendingDoc) *Error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if p.gen <= s.written {
		return nil
	}
	data, err := snapshot.Marshal(p.doc)
	if err != nil {
		return &Error{Kind: KindSave, Path: s.path, Err: fmt.Errorf("encode: %w", err)}
	}
	if err := WriteAtomic(s.path, s.TempPath(), data); err != nil {
		var cleanup *cleanupError
		if errors.As(err, &cleanup) {
			s.reporter.Report(&Error{Kind: KindCleanup, Path: s.TempPath(), Err: cleanup.err})
		}
		return &Error{Kind: KindSave, Path: s.path, Err: err}
	}
	s.written = p.gen
	return nil
}

type cleanupError struct {
	cause error
	err   error
}

func (e *cleanupError) Error() string {
	return fmt.Sprintf("%v (temp cleanup: %v)", e.cause, e.err)
}

func (e *cleanupError) Unwrap() error { return e.cause }

// WriteAtomic writes data to tmp, syncs it and renames it over path, so
// path holds either the old or the new content and never a partial
// write. On failure tmp is removed.
func WriteAtomic(path, tmp string, data []byte) (err error) {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = &cleanupError{cause: err, err: rmErr}
		}
	}()

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}

// DefaultPath resolves the progress file path in priority order:
// 1. WORDZ_PROGRESS environment variable
// 2. $XDG_DATA_HOME/wordz/voca_progress.json
// 3. ~/.local/share/wordz/voca_progress.json
func DefaultPath() (string, error) {
	if p := os.Getenv("WORDZ_PROGRESS"); p != "" {
		return p, ensureDir(p)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataHome, "wordz", "voca_progress.json")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
