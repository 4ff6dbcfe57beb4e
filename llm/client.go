// Package llm generates task suggestions through chat model providers using
// CloudWeGo Eino.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config holds configuration for creating a chat model client.
type Config struct {
	Provider    string
	Model       string
	APIKey      string  // Required for OpenAI, Claude, and Gemini
	BaseURL     string  // Required for Ollama (default: http://localhost:11434)
	MaxTokens   int     // Output token cap; 0 falls back to DefaultMaxOutputTokens
	Temperature float32 // Sampling temperature; 0 leaves the provider default
}

// NewChatModel creates a ChatModel instance based on the provider
// configuration. It returns an Eino BaseChatModel usable for Generate() calls.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		openaiCfg := &openai.ChatModelConfig{
			Model:  cfg.Model,
			APIKey: cfg.APIKey,
		}
		if cfg.MaxTokens > 0 {
			maxTokens := cfg.MaxTokens
			openaiCfg.MaxTokens = &maxTokens
		}
		if cfg.Temperature > 0 {
			temperature := cfg.Temperature
			openaiCfg.Temperature = &temperature
		}
		return openai.NewChatModel(ctx, openaiCfg)

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})

	case ProviderClaude:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("claude API key is required")
		}
		// The Anthropic API requires an explicit max_tokens.
		maxTokens := cfg.MaxTokens
		if maxTokens <= 0 {
			maxTokens = DefaultMaxOutputTokens
		}
		claudeCfg := &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: maxTokens,
		}
		if cfg.Temperature > 0 {
			temperature := cfg.Temperature
			claudeCfg.Temperature = &temperature
		}
		return claude.NewChatModel(ctx, claudeCfg)

	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini API key is required")
		}
		// The Gemini extension reads its key from the environment.
		_ = os.Setenv("GOOGLE_API_KEY", cfg.APIKey)
		_ = os.Setenv("GEMINI_API_KEY", cfg.APIKey)

		return gemini.NewChatModel(ctx, &gemini.Config{
			Model: cfg.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openai, ollama, claude, gemini)", cfg.Provider)
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (string, error) {
	switch p {
	case ProviderOpenAI, ProviderOllama, ProviderClaude, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", p)
	}
}
