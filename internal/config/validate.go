package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/wordz/internal/llm"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Save.Debounce < 0 {
		return fmt.Errorf("save.debounce must be >= 0 (got %v)", c.Save.Debounce)
	}
	if c.Session.MaxHistory < 1 {
		return fmt.Errorf("session.max_history must be >= 1 (got %d)", c.Session.MaxHistory)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}
	if p := c.LLM.Provider; p != "" && !slices.Contains(llm.Providers, p) {
		return fmt.Errorf("llm.provider must be one of %s (got %q)", strings.Join(llm.Providers, ", "), p)
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("llm.max_attempts must be >= 1 (got %d)", c.LLM.MaxAttempts)
	}
	return nil
}
