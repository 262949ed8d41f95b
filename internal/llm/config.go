package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// PlaceholderKey is the value shipped in sample env files. It counts as unset.
const PlaceholderKey = "your_api_key_here"

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the model backend used by the job-match
// advisor.
type Config struct {
	// Provider is one of the Provider* constants.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string // friendly name or full model ID
	BaseURL string // tests and proxies
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// Headers are added to every request.
	Headers map[string]string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures backoff for transient upstream failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "anthropic/claude-sonnet-4"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// KeyPresent reports whether k is a usable API key.
func KeyPresent(k string) bool {
	return k != "" && k != PlaceholderKey
}

// ConfigFromEnv overlays BIZPRO_* variables on DefaultConfig. When
// BIZPRO_LLM_PROVIDER is unset, the standard vendor variables are searched
// through DiscoverConfig. Otherwise they seed the named provider's key.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	explicit := os.Getenv("BIZPRO_LLM_PROVIDER")
	if explicit == "" {
		if found, ok := DiscoverConfig(); ok {
			cfg = found
		}
	} else {
		cfg.Provider = explicit
		seedVendorKeys(&cfg)
	}

	setString(&cfg.Anthropic.APIKey, "BIZPRO_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "BIZPRO_ANTHROPIC_MODEL")
	setString(&cfg.Anthropic.BaseURL, "BIZPRO_ANTHROPIC_BASE_URL")
	setString(&cfg.OpenAI.APIKey, "BIZPRO_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "BIZPRO_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "BIZPRO_OPENAI_BASE_URL")
	setString(&cfg.Gemini.APIKey, "BIZPRO_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "BIZPRO_GEMINI_MODEL")
	setString(&cfg.OpenRouter.APIKey, "BIZPRO_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "BIZPRO_OPENROUTER_MODEL")

	if n, err := strconv.Atoi(os.Getenv("BIZPRO_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("BIZPRO_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// seedVendorKeys fills each provider key from its vendor variable. The
// BIZPRO_*_API_KEY overlay still wins.
func seedVendorKeys(cfg *Config) {
	for _, v := range []struct {
		dst *string
		env string
	}{
		{&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY"},
		{&cfg.OpenAI.APIKey, "OPENAI_API_KEY"},
		{&cfg.Gemini.APIKey, "GEMINI_API_KEY"},
		{&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY"},
	} {
		if k := os.Getenv(v.env); KeyPresent(k) {
			*v.dst = k
		}
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// DiscoverConfig checks the vendor key variables in the order Anthropic,
// OpenAI, Gemini, OpenRouter and returns a Config for the first real key.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); KeyPresent(k) {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); KeyPresent(k) {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); KeyPresent(k) {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); KeyPresent(k) {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}
	return Config{}, false
}

// Configured reports whether the selected provider can make real calls.
// The job-match advisor falls back to its rule-based answer when it can't.
func (c Config) Configured() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider has a usable API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if !KeyPresent(c.Anthropic.APIKey) {
			return fmt.Errorf("BIZPRO_ANTHROPIC_API_KEY or ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if !KeyPresent(c.OpenAI.APIKey) {
			return fmt.Errorf("BIZPRO_OPENAI_API_KEY or OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if !KeyPresent(c.Gemini.APIKey) {
			return fmt.Errorf("BIZPRO_GEMINI_API_KEY or GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if !KeyPresent(c.OpenRouter.APIKey) {
			return fmt.Errorf("BIZPRO_OPENROUTER_API_KEY or OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
