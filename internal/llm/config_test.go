package llm

import "testing"

func TestConfigValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = "mock"
	cfg.Fallback = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = "gemini"
	cfg.Fallback = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for gemini without API key")
	}
}

func TestConfigValidate_SameTierRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = "openai"
	cfg.Fallback = "openai"
	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when fallback equals primary")
	}
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = "llama-local"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfigValidate_FallbackKeyChecked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary = "mock"
	cfg.Fallback = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for fallback anthropic without API key")
	}
}
