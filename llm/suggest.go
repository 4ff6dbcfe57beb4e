package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/dayflowhq/dayflow/internal/utils"
	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/prompts"
)

// chatProvider implements Provider on top of an Eino chat model.
type chatProvider struct {
	model        model.BaseChatModel
	systemPrompt string
	debug        bool
}

// NewChatProvider wraps an Eino chat model as a suggestion Provider.
func NewChatProvider(chatModel model.BaseChatModel, systemPrompt string, debug bool) Provider {
	return &chatProvider{model: chatModel, systemPrompt: systemPrompt, debug: debug}
}

// SuggestTasks sends the suggestion context to the chat model and parses the
// JSON array it returns. Suggestions with categories outside the available
// set are dropped rather than failing the whole batch.
func (p *chatProvider) SuggestTasks(ctx context.Context, req SuggestionRequest) ([]models.SuggestedTask, error) {
	// Nothing tracked yet: there is no signal worth a model round trip.
	if len(req.IncompleteCategories) == 0 && len(req.PreviousTasks) == 0 {
		return []models.SuggestedTask{}, nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion request: %w", err)
	}

	if p.debug {
		fmt.Printf("Suggestion request: %s\n", payload)
	}

	resp, err := p.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(p.systemPrompt),
		schema.UserMessage(string(payload)),
	})
	if err != nil {
		return nil, fmt.Errorf("llm generate: %w", err)
	}

	if p.debug {
		fmt.Printf("Suggestion response: %s\n", resp.Content)
	}

	suggestions, err := utils.ExtractAndParseJSON[[]models.SuggestedTask](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	available := make(map[string]bool, len(req.AvailableCategories))
	for _, c := range req.AvailableCategories {
		available[c] = true
	}

	valid := make([]models.SuggestedTask, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Title == "" {
			continue
		}
		if len(available) > 0 && !available[s.Category] {
			continue
		}
		valid = append(valid, s)
	}
	return valid, nil
}

// NewSuggestionProvider builds the default provider: the configured chat
// model plus the suggestion system prompt (honoring a templates-dir override).
func NewSuggestionProvider(ctx context.Context, cfg Config, templatesDir string, debug bool) (Provider, error) {
	systemPrompt, err := prompts.GetPrompt(prompts.KeySuggestTasks, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("load suggestion prompt: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModelForProvider(cfg.Provider)
	}
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	return NewChatProvider(chatModel, systemPrompt, debug), nil
}
