package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterHeaders attribute traffic to BizPro on the OpenRouter dashboard.
var openRouterHeaders = map[string]string{
	"HTTP-Referer": "https://github.com/abhisek/bizpro",
	"X-Title":      "BizPro",
}

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Model IDs
// are vendor-prefixed ("anthropic/claude-sonnet-4") and pass through as-is.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if !KeyPresent(cfg.APIKey) {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
		Headers: openRouterHeaders,
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
