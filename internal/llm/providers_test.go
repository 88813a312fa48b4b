package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 20},
	}
}

func TestAnthropicProvider(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, anthropicMessage(`{"name":"ice"}`, "end_turn"))
		p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
		if err != nil {
			t.Fatal(err)
		}
		resp, err := p.Generate(context.Background(), Request{System: "sys", Prompt: "ice", Schema: testSchema(), MaxTokens: 256})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Usage.InputTokens != 40 || resp.Stop != StopEnd || string(resp.Content) != `{"name":"ice"}` {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, anthropicMessage(`{"name":`, "max_tokens"))
		p, _ := NewAnthropicProvider(ProviderConfig{APIKey: "k", BaseURL: srv.URL})
		_, err := p.Generate(context.Background(), Request{Prompt: "ice", MaxTokens: 5})
		var truncated *ErrMaxTokensExceeded
		if !errors.As(err, &truncated) {
			t.Errorf("err = %v, want ErrMaxTokensExceeded", err)
		}
	})

	t.Run("rate limit", func(t *testing.T) {
		srv := newTestServer(t, http.StatusTooManyRequests, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
		p, _ := NewAnthropicProvider(ProviderConfig{APIKey: "k", BaseURL: srv.URL})
		_, err := p.Generate(context.Background(), Request{Prompt: "ice", MaxTokens: 5})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Errorf("err = %v, want ErrRateLimit", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := NewAnthropicProvider(ProviderConfig{}); err == nil {
			t.Error("expected error without API key")
		}
	})
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 10, "total_tokens": 40},
	}
}

func TestOpenAIProvider(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, chatCompletion(`{"name":"ice","pos":"noun"}`, "stop"))
		p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
		if err != nil {
			t.Fatal(err)
		}
		resp, err := p.Generate(context.Background(), Request{System: "sys", Prompt: "ice", Schema: testSchema()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Usage.Total() != 40 || resp.Model != "gpt-4o-mini" {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, chatCompletion(`{"pos":"noun"}`, "stop"))
		p, _ := NewOpenAIProvider(ProviderConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
		_, err := p.Generate(context.Background(), Request{Prompt: "ice", Schema: testSchema()})
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("err = %v, want ErrInvalidResponse", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := newTestServer(t, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"message": "internal", "type": "server_error"},
		})
		p, _ := NewOpenAIProvider(ProviderConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
		_, err := p.Generate(context.Background(), Request{Prompt: "ice"})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Errorf("err = %v, want ErrProviderUnavailable", err)
		}
	})
}

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q, want the ID passed through", p.ModelID())
	}
	if _, err := NewOpenRouterProvider(ProviderConfig{Model: "x"}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(testSchema().Definition)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["pos"].Type != "STRING" || len(s.Properties["pos"].Enum) != 2 {
		t.Errorf("pos = %+v", s.Properties["pos"])
	}
	if s.Properties["examples"].Items.Type != "STRING" {
		t.Errorf("examples items = %+v", s.Properties["examples"].Items)
	}
	if len(s.Required) != 1 || s.Required[0] != "name" {
		t.Errorf("required = %v", s.Required)
	}
}
