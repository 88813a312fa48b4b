// Package config loads wordz settings from a YAML file and WORDZ_*
// environment variables.
package config

import (
	"time"

	"github.com/abhisek/wordz/internal/llm"
)

// Config is the root application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Save    SaveConfig    `yaml:"save"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	LLM     LLMConfig     `yaml:"llm"`
	Speech  SpeechConfig  `yaml:"speech"`
}

// defaults seeds the fields whose default is true. cleanenv treats false
// as unset and would reapply an env-default over an explicit false.
func defaults() Config {
	return Config{
		Save:    SaveConfig{BackupOnExit: true},
		Session: SessionConfig{AutoMarkKnown: true},
	}
}

// PathsConfig holds file locations. Empty values are resolved to the XDG
// defaults by the caller; an empty dictionary means the built-in list.
type PathsConfig struct {
	Progress   string `yaml:"progress"   env:"WORDZ_PROGRESS"`
	Dictionary string `yaml:"dictionary" env:"WORDZ_DICTIONARY"`
	DB         string `yaml:"db"         env:"WORDZ_DB"`
	Log        string `yaml:"log"        env:"WORDZ_LOG_FILE"`
}

// SaveConfig holds progress-file settings.
type SaveConfig struct {
	Debounce     time.Duration `yaml:"debounce"       env:"WORDZ_SAVE_DEBOUNCE"  env-default:"200ms"`
	BackupOnExit bool          `yaml:"backup_on_exit" env:"WORDZ_BACKUP_ON_EXIT"`
}

// SessionConfig holds browse-flow settings.
type SessionConfig struct {
	MaxHistory    int  `yaml:"max_history"     env:"WORDZ_MAX_HISTORY"     env-default:"300"`
	AutoMarkKnown bool `yaml:"auto_mark_known" env:"WORDZ_AUTO_MARK_KNOWN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDZ_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WORDZ_LOG_FORMAT" env-default:"text"`
}

// LLMConfig holds language-model settings. An empty provider falls back to
// whichever vendor API key is present in the environment.
type LLMConfig struct {
	Provider string `yaml:"provider" env:"WORDZ_LLM_PROVIDER"`

	AnthropicAPIKey string `yaml:"anthropic_api_key" env:"WORDZ_ANTHROPIC_API_KEY"`
	AnthropicModel  string `yaml:"anthropic_model"   env:"WORDZ_ANTHROPIC_MODEL"   env-default:"claude-haiku"`

	OpenAIAPIKey  string `yaml:"openai_api_key"  env:"WORDZ_OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"openai_model"    env:"WORDZ_OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	OpenAIBaseURL string `yaml:"openai_base_url" env:"WORDZ_OPENAI_BASE_URL"`

	GeminiAPIKey string `yaml:"gemini_api_key" env:"WORDZ_GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model"   env:"WORDZ_GEMINI_MODEL"   env-default:"gemini-flash"`

	OpenRouterAPIKey  string `yaml:"openrouter_api_key"  env:"WORDZ_OPENROUTER_API_KEY"`
	OpenRouterModel   string `yaml:"openrouter_model"    env:"WORDZ_OPENROUTER_MODEL"    env-default:"google/gemini-2.0-flash-001"`
	OpenRouterBaseURL string `yaml:"openrouter_base_url" env:"WORDZ_OPENROUTER_BASE_URL" env-default:"https://openrouter.ai/api/v1"`

	Timeout     time.Duration `yaml:"timeout"      env:"WORDZ_LLM_TIMEOUT"      env-default:"30s"`
	MaxAttempts int           `yaml:"max_attempts" env:"WORDZ_LLM_MAX_ATTEMPTS" env-default:"3"`
	InitialWait time.Duration `yaml:"initial_wait" env:"WORDZ_LLM_INITIAL_WAIT" env-default:"1s"`
	MaxWait     time.Duration `yaml:"max_wait"     env:"WORDZ_LLM_MAX_WAIT"     env-default:"10s"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Command string `yaml:"command" env:"WORDZ_TTS_COMMAND" env-default:"espeak-ng"`
	Voice   string `yaml:"voice"   env:"WORDZ_TTS_VOICE"   env-default:"en-us"`
	// STT is an optional recorder/transcriber command; it receives the
	// recording length in seconds and prints the text.
	STT string `yaml:"stt" env:"WORDZ_STT_COMMAND"`
}

// Config converts the settings to an llm.Config.
func (c LLMConfig) Config() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Provider = c.Provider
	cfg.Anthropic = llm.ProviderConfig{APIKey: c.AnthropicAPIKey, Model: c.AnthropicModel}
	cfg.OpenAI = llm.ProviderConfig{APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel, BaseURL: c.OpenAIBaseURL}
	cfg.Gemini = llm.ProviderConfig{APIKey: c.GeminiAPIKey, Model: c.GeminiModel}
	cfg.OpenRouter = llm.ProviderConfig{APIKey: c.OpenRouterAPIKey, Model: c.OpenRouterModel, BaseURL: c.OpenRouterBaseURL}
	cfg.Timeout = c.Timeout
	cfg.Retry.MaxAttempts = c.MaxAttempts
	cfg.Retry.InitialWait = c.InitialWait
	cfg.Retry.MaxWait = c.MaxWait
	return cfg
}
