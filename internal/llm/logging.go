package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/wordz/internal/store"
)

type purposeKey struct{}

// WithPurpose labels the requests made with ctx, e.g. "enrich".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}

// Recorder stores one row per LLM request.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// RecordingProvider writes every request to the activity log and to the
// debug log.
type RecordingProvider struct {
	inner    Provider
	provider string
	rec      Recorder
	log      *slog.Logger
	now      func() time.Time
}

// WithRecording wraps p. rec and log may be nil.
func WithRecording(p Provider, provider string, rec Recorder, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &RecordingProvider{inner: p, provider: provider, rec: rec, log: log, now: time.Now}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := r.now()
	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  r.provider,
		Model:     r.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: r.now().Sub(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	r.log.Debug("llm request",
		"provider", data.Provider,
		"model", data.Model,
		"purpose", data.Purpose,
		"latency_ms", data.LatencyMs,
		"input_tokens", data.InputTokens,
		"output_tokens", data.OutputTokens,
		"err", err,
	)
	if r.rec != nil {
		// Recording must not fail the request.
		if recErr := r.rec.AppendLLMRequest(context.WithoutCancel(ctx), data); recErr != nil {
			r.log.Warn("record llm request", "err", recErr)
		}
	}
	return resp, err
}

func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }
