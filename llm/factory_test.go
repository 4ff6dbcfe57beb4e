package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/types"
)

func TestClientConfigCarriesAllSettings(t *testing.T) {
	cfg := clientConfig(&types.LLMConfig{
		Provider:        " OpenAI ",
		ModelName:       "gpt-4o-mini",
		APIKey:          "sk-test",
		BaseURL:         "http://example.test",
		MaxOutputTokens: 512,
		Temperature:     0.3,
	})

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "http://example.test", cfg.BaseURL)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.InDelta(t, 0.3, float64(cfg.Temperature), 0.001)
}

func TestNewProviderRejectsBadInput(t *testing.T) {
	_, err := NewProvider(context.Background(), nil, "")
	require.Error(t, err)

	_, err = NewProvider(context.Background(), &types.LLMConfig{Provider: ""}, "")
	require.Error(t, err)

	_, err = NewProvider(context.Background(), &types.LLMConfig{Provider: "cohere"}, "")
	require.Error(t, err)
}
