package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen/screentest"
	"github.com/abhisek/wordz/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	events []store.WordEvent
	err    error
}

func (m *mockEventRepo) AppendWordEvent(_ context.Context, _ store.WordEventData) error {
	return nil
}

func (m *mockEventRepo) QueryWordEvents(_ context.Context, opts store.QueryOpts) ([]store.WordEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []store.WordEvent
	for _, e := range m.events {
		if opts.Action == "" || e.Action == opts.Action {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) ActionCounts(_ context.Context, _ store.QueryOpts) ([]store.ActionCount, error) {
	counts := map[string]int{}
	for _, e := range m.events {
		counts[e.Action]++
	}
	var out []store.ActionCount
	for a, n := range counts {
		out = append(out, store.ActionCount{Action: a, Count: n})
	}
	return out, nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryLLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func event(seq int64, action, word string) store.WordEvent {
	return store.WordEvent{
		Sequence:      seq,
		Timestamp:     time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
		WordEventData: store.WordEventData{SessionID: "s1", Action: action, Word: word},
	}
}

func loaded(t *testing.T, repo store.EventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestHistory_Loads(t *testing.T) {
	repo := &mockEventRepo{events: []store.WordEvent{
		event(3, store.ActionKnown, "apple"),
		event(2, store.ActionRemoved, "banana"),
		event(1, store.ActionKnown, "cherry"),
	}}
	s := loaded(t, repo)
	if !s.loaded || len(s.events) != 3 {
		t.Fatalf("loaded = %v events = %d", s.loaded, len(s.events))
	}
	if s.counts[""] != 3 || s.counts[store.ActionKnown] != 2 {
		t.Errorf("counts = %v", s.counts)
	}
	view := s.View(100, 20)
	for _, want := range []string{"apple", "banana", "known 2", "all 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_FilterTab(t *testing.T) {
	repo := &mockEventRepo{events: []store.WordEvent{
		event(2, store.ActionRemoved, "banana"),
		event(1, store.ActionKnown, "cherry"),
	}}
	s := loaded(t, repo)

	_, cmd := s.Update(screentest.Key("tab"))
	if Filters[s.filter] != store.ActionKnown {
		t.Fatalf("filter = %q, want known", Filters[s.filter])
	}
	s.Update(cmd())
	if len(s.events) != 1 || s.events[0].Word != "cherry" {
		t.Errorf("events = %+v", s.events)
	}
}

func TestHistory_StaleLoadIgnored(t *testing.T) {
	repo := &mockEventRepo{events: []store.WordEvent{event(1, store.ActionKnown, "cherry")}}
	s := loaded(t, repo)
	s.Update(screentest.Key("tab"))
	s.Update(historyLoadedMsg{Action: "", Events: nil})
	if s.loaded {
		t.Error("a result for another filter must be ignored")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &mockEventRepo{})
	if !strings.Contains(s.View(80, 20), "Nothing recorded yet.") {
		t.Error("expected the empty message")
	}
}

func TestHistory_Error(t *testing.T) {
	s := loaded(t, &mockEventRepo{err: errors.New("disk gone")})
	if !strings.Contains(s.View(80, 20), "disk gone") {
		t.Error("expected the error in the view")
	}
}

func TestHistory_Navigation(t *testing.T) {
	repo := &mockEventRepo{events: []store.WordEvent{
		event(2, store.ActionKnown, "apple"),
		event(1, store.ActionKnown, "banana"),
	}}
	s := loaded(t, repo)
	s.Update(screentest.Key("down"))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(screentest.Key("down"))
	if s.selected != 1 {
		t.Errorf("selected = %d, want to stay at the end", s.selected)
	}
	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
