package llm

import (
	"fmt"
	"time"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is "anthropic", "openai", "gemini", or "mock".
	Provider string

	// APIKey authenticates against the selected provider.
	APIKey string

	// Model is a friendly name or a literal model id. Empty picks the
	// provider default.
	Model string

	// BaseURL overrides the OpenAI endpoint for compatible APIs.
	BaseURL string

	Retry RetryConfig
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetry returns the standard retry tuning.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// Validate checks that the selected provider can be constructed.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("API key is required for the %s provider", c.Provider)
		}
	case "mock":
		// No key needed.
	case "":
		return fmt.Errorf("no model provider configured")
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
