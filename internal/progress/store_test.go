package progress

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordz/internal/words"
)

type recorder struct {
	mu   sync.Mutex
	errs []*Error
}

func (r *recorder) Report(err *Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder) kinds() []ErrorKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ErrorKind
	for _, e := range r.errs {
		out = append(out, e.Kind)
	}
	return out
}

// stepClock returns a clock that advances one minute per call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Minute)
		return t
	}
}

func newTestStore(t *testing.T, opts Options) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	if opts.Reporter == nil {
		opts.Reporter = rec
	}
	if opts.Debounce == 0 {
		opts.Debounce = 10 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = stepClock()
	}
	path := filepath.Join(t.TempDir(), "voca_progress.json")
	s := New(path, []string{"apple", "banana", "cherry"}, opts)
	t.Cleanup(s.Wait)
	return s, rec
}

func TestLoad_NoState(t *testing.T) {
	s, rec := newTestStore(t, Options{})

	m, err := s.Load()

	require.ErrorIs(t, err, ErrNoState)
	require.NotNil(t, m)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, m.Vocabulary())
	assert.Empty(t, rec.kinds())
}

func TestSaveSync_RoundTrip(t *testing.T) {
	s, rec := newTestStore(t, Options{})
	m, _ := s.Load()
	m.AddWords("damson")
	m.ClassifyKnown("apple")

	require.NoError(t, s.SaveSync(m))

	assert.NoFileExists(t, s.TempPath())
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry", "damson"}, got.Vocabulary())
	assert.True(t, got.Known.Has("apple"))
	assert.True(t, got.New.Has("damson"))
	assert.Empty(t, rec.kinds(), "a document we wrote passes the schema check")
}

func TestSaveSync_RenamedBaseWordSurvivesReload(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	m, _ := s.Load()
	m.ClassifyKnown("cherry")
	_, err := m.RenameOrMerge("cherry", "cherrie")
	require.NoError(t, err)

	require.NoError(t, s.SaveSync(m))
	got, err := s.Load()

	require.NoError(t, err)
	assert.True(t, got.Contains("cherrie"))
	assert.Equal(t, words.StateKnown, got.State("cherrie"))
	assert.Equal(t, []string{"cherrie"}, got.KnownSeq)
	assert.Equal(t, []string{"cherrie"}, got.User.Sorted())
	assert.NotEqual(t, words.StateKnown, got.State("cherry"))
}

func TestLoad_CorruptFileIsLeftAlone(t *testing.T) {
	s, rec := newTestStore(t, Options{})
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"known_words": [`), 0o644))

	m, err := s.Load()

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindDecode, perr.Kind)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, m.Vocabulary())
	assert.Contains(t, rec.kinds(), KindDecode)

	data, rerr := os.ReadFile(s.Path())
	require.NoError(t, rerr)
	assert.Equal(t, `{"known_words": [`, string(data))
}

func TestLoad_SchemaFindingsAreReportedButLoaded(t *testing.T) {
	s, rec := newTestStore(t, Options{})
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"known_words": ["apple"]}`), 0o644))

	m, err := s.Load()

	require.NoError(t, err)
	assert.True(t, m.Known.Has("apple"))
	assert.Equal(t, []ErrorKind{KindSchema}, rec.kinds())
}

func TestSaveSync_InterruptedWriteKeepsDestination(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	m, _ := s.Load()
	m.ClassifyKnown("banana")
	require.NoError(t, s.SaveSync(m))

	// A crash after writing the temp file but before the rename.
	require.NoError(t, os.WriteFile(s.TempPath(), []byte(`{"known_wo`), 0o644))

	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, got.Known.Has("banana"))

	got.ClassifyKnown("cherry")
	require.NoError(t, s.SaveSync(got))
	assert.NoFileExists(t, s.TempPath())
	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "cherry"}, again.Known.Sorted())
}

func TestSaveAsync_CoalescesToLatestState(t *testing.T) {
	s, rec := newTestStore(t, Options{Debounce: 30 * time.Millisecond})
	m, _ := s.Load()

	for _, w := range []string{"apple", "banana", "cherry"} {
		m.ClassifyKnown(w)
		s.SaveAsync(m)
	}
	assert.True(t, s.Pending())

	s.Wait()

	assert.False(t, s.Pending())
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, got.Known.Sorted())
	assert.Empty(t, rec.kinds())
}

func TestSaveAsync_FailureIsReportedAndTempRemoved(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	rec := &recorder{}
	s := New(filepath.Join(blocker, "progress.json"), nil, Options{Debounce: time.Millisecond, Reporter: rec})

	s.SaveAsync(words.New([]string{"apple"}))
	s.Wait()

	assert.Equal(t, []ErrorKind{KindSave}, rec.kinds())
	assert.NoFileExists(t, s.TempPath())
	assert.False(t, s.Pending())
}

func TestSaveSync_CancelsScheduledSave(t *testing.T) {
	s, _ := newTestStore(t, Options{Debounce: time.Hour})
	m, _ := s.Load()

	m.ClassifyKnown("apple")
	s.SaveAsync(m)
	require.True(t, s.Pending())

	m.ClassifyKnown("banana")
	require.NoError(t, s.SaveSync(m))

	assert.False(t, s.Pending())
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled save was not cancelled")
	}
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, got.Known.Sorted())
}

func TestSaveSync_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	s := New(filepath.Join(blocker, "p.json"), nil, Options{Reporter: &recorder{}})

	err := s.SaveSync(words.New(nil))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindSave, perr.Kind)
}

func TestTempPath(t *testing.T) {
	s := New(filepath.Join("data", "voca_progress.json"), nil, Options{})
	assert.Equal(t, filepath.Join("data", "voca_progress.tmp"), s.TempPath())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "save", KindSave.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
	e := &Error{Kind: KindLoad, Path: "x.json", Err: os.ErrPermission}
	assert.ErrorIs(t, e, os.ErrPermission)
	assert.Contains(t, e.Error(), "load x.json")
}
