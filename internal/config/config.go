// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"quizard/internal/llm"
	"quizard/internal/store"
)

// Config holds everything tunable via QUIZARD_* environment variables.
type Config struct {
	// DBPath overrides the XDG-derived database location.
	DBPath string `env:"QUIZARD_DB"`

	// LLMProvider selects the model backend: anthropic, openai, gemini,
	// or mock. Empty enables provider discovery from ambient API keys.
	LLMProvider string `env:"QUIZARD_LLM_PROVIDER"`

	// LLMAPIKey authenticates against the selected provider. Empty falls
	// back to the provider's conventional key variable.
	LLMAPIKey string `env:"QUIZARD_LLM_API_KEY"`

	// LLMModel is a friendly model name or a literal model id.
	LLMModel string `env:"QUIZARD_LLM_MODEL"`

	// LLMBaseURL overrides the OpenAI endpoint for compatible APIs.
	LLMBaseURL string `env:"QUIZARD_LLM_BASE_URL"`

	// AIBatchSize is the number of questions per generated batch.
	AIBatchSize int `env:"QUIZARD_AI_BATCH_SIZE" envDefault:"10"`
}

// providerKeyVars maps providers to their conventional API key variables,
// in discovery preference order.
var providerKeyVars = []struct {
	provider string
	envVar   string
}{
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"gemini", "GEMINI_API_KEY"},
}

// Load parses the environment and resolves derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}

	cfg.resolveLLM()
	return cfg, nil
}

// resolveLLM fills in provider and key from the conventional variables when
// the QUIZARD_* ones are unset.
func (c *Config) resolveLLM() {
	if c.LLMProvider == "" {
		for _, pk := range providerKeyVars {
			if os.Getenv(pk.envVar) != "" {
				c.LLMProvider = pk.provider
				break
			}
		}
	}
	if c.LLMAPIKey == "" {
		for _, pk := range providerKeyVars {
			if pk.provider == c.LLMProvider {
				c.LLMAPIKey = os.Getenv(pk.envVar)
				break
			}
		}
	}
}

// LLM translates the loaded settings into a provider config.
func (c Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.LLMProvider,
		APIKey:   c.LLMAPIKey,
		Model:    c.LLMModel,
		BaseURL:  c.LLMBaseURL,
		Retry:    llm.DefaultRetry(),
	}
}

// AIEnabled reports whether a model provider is configured.
func (c Config) AIEnabled() bool {
	return c.LLMProvider != ""
}
