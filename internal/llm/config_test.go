package llm

import (
	"testing"
	"time"
)

var vendorKeys = []string{
	"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	"BIZPRO_LLM_PROVIDER", "BIZPRO_ANTHROPIC_API_KEY", "BIZPRO_OPENAI_API_KEY",
	"BIZPRO_GEMINI_API_KEY", "BIZPRO_OPENROUTER_API_KEY",
	"BIZPRO_LLM_TIMEOUT", "BIZPRO_LLM_MAX_ATTEMPTS",
}

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range vendorKeys {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic placeholder key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: PlaceholderKey}}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-ant"}}, false},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.cfg.Configured() == tt.wantErr {
				t.Fatalf("Configured() disagrees with Validate()")
			}
		})
	}
}

func TestDiscoverConfig_PrefersAnthropic(t *testing.T) {
	clearKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("got provider %q key %q", cfg.Provider, cfg.Anthropic.APIKey)
	}
}

func TestDiscoverConfig_SkipsPlaceholder(t *testing.T) {
	clearKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", PlaceholderKey)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderGemini {
		t.Fatalf("expected gemini, got %q (ok=%v)", cfg.Provider, ok)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearKeys(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearKeys(t)
	t.Setenv("BIZPRO_LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("BIZPRO_OPENAI_API_KEY", "sk-test")
	t.Setenv("BIZPRO_LLM_TIMEOUT", "12s")
	t.Setenv("BIZPRO_LLM_MAX_ATTEMPTS", "4")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("unexpected provider config: %+v", cfg)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_ExplicitProviderUsesVendorKey(t *testing.T) {
	clearKeys(t)
	t.Setenv("BIZPRO_LLM_PROVIDER", ProviderAnthropic)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-real")
	t.Setenv("OPENROUTER_API_KEY", PlaceholderKey)

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant-real" {
		t.Fatalf("vendor key not used: %+v", cfg)
	}
	if !cfg.Configured() {
		t.Fatal("explicit provider with a vendor key should be configured")
	}
	if cfg.OpenRouter.APIKey != "" {
		t.Errorf("placeholder key leaked into config: %q", cfg.OpenRouter.APIKey)
	}

	t.Setenv("BIZPRO_ANTHROPIC_API_KEY", "sk-ant-override")
	if got := ConfigFromEnv().Anthropic.APIKey; got != "sk-ant-override" {
		t.Errorf("BIZPRO_ANTHROPIC_API_KEY should win, got %q", got)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeys(t)
	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Configured() {
		t.Fatal("no keys set, should not be configured")
	}
}
