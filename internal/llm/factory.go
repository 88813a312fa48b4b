package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// New builds the configured provider, wrapped so that every attempt is
// recorded and transient failures are retried:
//
//	caller → timeout → retry → recording → provider
//
// rec may be nil.
func New(ctx context.Context, cfg Config, rec Recorder, log *slog.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	sel := cfg.Selected()
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(sel)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(sel)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(sel)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, sel)
	case ProviderMock:
		return NewMockProvider(), nil
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithRecording(base, cfg.Provider, rec, log)
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}

// resolveModel maps a short model name to the provider's model ID.
// Unknown names are passed through.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
