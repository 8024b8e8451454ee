package llm

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STEPWISE_LLM_PROVIDER",
		"STEPWISE_ANTHROPIC_API_KEY", "STEPWISE_ANTHROPIC_MODEL",
		"STEPWISE_OPENAI_API_KEY", "STEPWISE_OPENAI_MODEL", "STEPWISE_OPENAI_BASE_URL",
		"STEPWISE_GEMINI_API_KEY", "STEPWISE_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STEPWISE_LLM_PROVIDER", "openai")
	t.Setenv("STEPWISE_OPENAI_API_KEY", "sk-test")
	t.Setenv("STEPWISE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("default anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestValidateMissingKey(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing anthropic key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not need a key: %v", err)
	}

	cfg.Provider = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovery with no keys should fail")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("got %q ok=%v, want anthropic", cfg.Provider, ok)
	}

	// Gemini outranks the others when present.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("got %q ok=%v, want gemini", cfg.Provider, ok)
	}
}

func TestMockStreamerRecordsCalls(t *testing.T) {
	mock := NewMockStreamer(MockScript{Tokens: []string{"hi"}})

	req := Request{Messages: []Message{{Role: RoleUser, Content: "q"}}}
	stream, err := mock.Stream(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drain(t, stream)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	if got := mock.LastCall().Messages[0].Content; got != "q" {
		t.Errorf("recorded content = %q, want q", got)
	}
}
