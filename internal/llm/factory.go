package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the two-tier oracle provider from configuration.
// Each tier is wrapped with event logging so failed primary calls are
// recorded even when the fallback saves the turn.
//
// Stack: caller → fallback → (logging → vendor) per tier.
func NewProvider(ctx context.Context, cfg Config, eventRepo EventRepo) (Provider, error) {
	primary, err := newTier(ctx, cfg, cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("initializing primary %s provider: %w", cfg.Primary, err)
	}

	var secondary Provider
	if cfg.Fallback != "" {
		secondary, err = newTier(ctx, cfg, cfg.Fallback)
		if err != nil {
			return nil, fmt.Errorf("initializing fallback %s provider: %w", cfg.Fallback, err)
		}
	}

	if eventRepo != nil {
		primary = WithLogging(primary, eventRepo)
		if secondary != nil {
			secondary = WithLogging(secondary, eventRepo)
		}
	}

	return WithFallback(primary, secondary), nil
}

func newTier(ctx context.Context, cfg Config, name string) (Provider, error) {
	switch name {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		// OpenRouter is OpenAI-compatible.
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", name)
	}
}
