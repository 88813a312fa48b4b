package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func newTestRetry(inner Provider) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(inner, RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}).(*RetryProvider)
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func TestRetry_SucceedsFirstTime(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	r, waits := newTestRetry(mock)

	if _, err := r.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 1 || len(*waits) != 0 {
		t.Errorf("calls = %d, waits = %v", mock.CallCount(), *waits)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrRateLimit{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r, waits := newTestRetry(mock)

	if _, err := r.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 3 || len(*waits) != 2 {
		t.Errorf("calls = %d, waits = %v", mock.CallCount(), *waits)
	}
	// Second backoff doubles the first, within jitter.
	if w := (*waits)[1]; w < 160*time.Millisecond || w > 240*time.Millisecond {
		t.Errorf("second wait = %v, want 200ms ±20%%", w)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	mock := NewMockProvider(MockResponse{Err: down}, MockResponse{Err: down}, MockResponse{Err: down}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	if !errors.Is(err, down) {
		t.Fatalf("err = %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) || mock.CallCount() != 1 {
		t.Errorf("err = %v, calls = %d", err, mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := &ErrInvalidResponse{Err: errors.New("bad")}
	mock := NewMockProvider(MockResponse{Err: bad}, MockResponse{Err: bad}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	if !errors.Is(err, bad) || mock.CallCount() != 2 {
		t.Errorf("err = %v, calls = %d", err, mock.CallCount())
	}
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 3 * time.Second}}, MockResponse{Content: json.RawMessage(`{}`)})
	r, waits := newTestRetry(mock)

	if _, err := r.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if len(*waits) != 1 || (*waits)[0] != 3*time.Second {
		t.Errorf("waits = %v, want [3s]", *waits)
	}
}

func TestRetry_CanceledContextStops(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	if p := WithTimeout(slowProvider{}, 0); p != (slowProvider{}) {
		t.Error("zero timeout should return the provider unchanged")
	}
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
	if p.ModelID() != "slow" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
