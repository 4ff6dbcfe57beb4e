package llm

// Provider constants
const (
	// DefaultProvider is the default suggestion provider
	DefaultProvider = ProviderOpenAI

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderOllama represents the Ollama provider
	ProviderOllama = "ollama"

	// ProviderClaude represents the Anthropic Claude provider
	ProviderClaude = "claude"

	// ProviderGemini represents the Google Gemini provider
	ProviderGemini = "gemini"
)

// DefaultOllamaURL is the default URL for an Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// DefaultMaxOutputTokens caps model output when the config leaves it unset.
const DefaultMaxOutputTokens = 4096

// DefaultModelForProvider returns the default chat model ID for a provider.
func DefaultModelForProvider(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderOllama:
		return "llama3.2"
	case ProviderClaude:
		return "claude-3-5-haiku-latest"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return ""
	}
}
