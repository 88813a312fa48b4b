package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/wordz/internal/store"
)

type memLLMRecorder struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (m *memLLMRecorder) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, d)
	return m.err
}

func TestRecordingProvider_Success(t *testing.T) {
	rec := &memLLMRecorder{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithRecording(mock, ProviderMock, rec, nil).(*RecordingProvider)
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		tick = tick.Add(250 * time.Millisecond)
		return tick
	}

	ctx := WithPurpose(context.Background(), "enrich")
	if _, err := p.Generate(ctx, Request{Prompt: "ice"}); err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	want := store.LLMRequestEventData{
		Provider:     ProviderMock,
		Model:        "mock",
		Purpose:      "enrich",
		InputTokens:  12,
		OutputTokens: 7,
		LatencyMs:    250,
		Success:      true,
	}
	if rec.events[0] != want {
		t.Errorf("event = %+v, want %+v", rec.events[0], want)
	}
}

func TestRecordingProvider_FailureIsRecordedAndReturned(t *testing.T) {
	rec := &memLLMRecorder{}
	boom := errors.New("boom")
	p := WithRecording(NewMockProvider(MockResponse{Err: boom}), ProviderMock, rec, nil)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if len(rec.events) != 1 || rec.events[0].Success || rec.events[0].ErrorMessage != "boom" {
		t.Errorf("events = %+v", rec.events)
	}
	if rec.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", rec.events[0].Purpose)
	}
}

func TestRecordingProvider_RecorderErrorIgnored(t *testing.T) {
	rec := &memLLMRecorder{err: errors.New("db locked")}
	p := WithRecording(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("recorder failure leaked: %v", err)
	}
}

func TestRecordingProvider_NilRecorder(t *testing.T) {
	p := WithRecording(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
}
