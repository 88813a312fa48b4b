// Package llm talks to hosted language models. Every provider answers a
// single-turn prompt with JSON that matches a caller-supplied schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a prompt.
type Provider interface {
	// Generate sends req and returns the model's answer. With a Schema set,
	// Content is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System      string
	Prompt      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Schema is the JSON Schema the answer must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "word-notes". It doubles as
	// the cache key for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason says why generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is the model's answer.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
	Stop    StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// checkStop turns a truncated answer into ErrMaxTokensExceeded.
func checkStop(resp *Response) (*Response, error) {
	if resp.Stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	return resp, nil
}
