package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped with retry.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = newAnthropicProvider(cfg)
	case "openai":
		base, err = newOpenAIProvider(cfg)
	case "gemini":
		base, err = newGeminiProvider(ctx, cfg)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = DefaultRetry()
	}
	return WithRetry(base, retry), nil
}
