package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds oracle provider configuration.
//
// The engine runs a two-tier setup: Primary is a fast/cheap model tried
// first on every call, Fallback is a general-purpose model tried once when
// the primary fails on transport or returns nothing. There is no third tier.
type Config struct {
	// Primary selects the first-tier provider.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Primary string

	// Fallback selects the second-tier provider. Empty disables fallback.
	Fallback string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout is the maximum duration for a single oracle call
	// (both tiers included). Default: 45s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
// OpenRouter speaks the OpenAI wire protocol; it is served by the
// OpenAI provider with a different base URL.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults: Gemini flash as the
// fast first tier, GPT-4o-mini as the general-purpose second tier.
func DefaultConfig() Config {
	return Config{
		Primary:  "gemini",
		Fallback: "openai",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://openrouter.ai/api/v1",
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TEACHME_ORACLE_PRIMARY"); p != "" {
		cfg.Primary = p
	}
	if p, ok := os.LookupEnv("TEACHME_ORACLE_FALLBACK"); ok {
		cfg.Fallback = p
	}

	if k := os.Getenv("TEACHME_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("TEACHME_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("TEACHME_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("TEACHME_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("TEACHME_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("TEACHME_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("TEACHME_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("TEACHME_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("TEACHME_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	// Bare vendor keys work too, for first-run convenience.
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.OpenRouter.APIKey == "" {
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}

	return cfg
}

// Validate checks that each selected tier has its required API key set and
// that the two tiers are distinct.
func (c Config) Validate() error {
	if c.Primary == "" {
		return fmt.Errorf("oracle primary provider is required")
	}
	if c.Fallback != "" && c.Fallback == c.Primary {
		return fmt.Errorf("oracle fallback provider must differ from primary (%q)", c.Primary)
	}
	if err := c.validateTier(c.Primary); err != nil {
		return err
	}
	if c.Fallback != "" {
		return c.validateTier(c.Fallback)
	}
	return nil
}

func (c Config) validateTier(name string) error {
	switch name {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TEACHME_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TEACHME_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("TEACHME_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("TEACHME_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown oracle provider: %q", name)
	}
	return nil
}
