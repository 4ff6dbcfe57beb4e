package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayflowhq/dayflow/types"
)

// NewProvider is a factory function that returns a suggestion Provider based
// on the application's LLM configuration.
func NewProvider(ctx context.Context, config *types.LLMConfig, templatesDir string) (Provider, error) {
	if config == nil {
		return nil, fmt.Errorf("LLM configuration cannot be nil")
	}

	provider := strings.ToLower(strings.TrimSpace(config.Provider))
	if provider == "" {
		return nil, fmt.Errorf("no LLM provider specified in configuration")
	}
	if _, err := ValidateProvider(provider); err != nil {
		return nil, err
	}

	return NewSuggestionProvider(ctx, clientConfig(config), templatesDir, config.Debug)
}

// clientConfig maps the application's LLM settings onto the chat client
// config, output limits and sampling temperature included.
func clientConfig(config *types.LLMConfig) Config {
	return Config{
		Provider:    strings.ToLower(strings.TrimSpace(config.Provider)),
		Model:       config.ModelName,
		APIKey:      config.APIKey,
		BaseURL:     config.BaseURL,
		MaxTokens:   config.MaxOutputTokens,
		Temperature: float32(config.Temperature),
	}
}
