package llm

import (
	"context"

	"github.com/dayflowhq/dayflow/models"
)

// SuggestionRequest carries the context a provider uses to suggest tasks.
type SuggestionRequest struct {
	// IncompleteCategories are categories that currently hold unfinished
	// tasks. An empty list means there is nothing to ground suggestions on.
	IncompleteCategories []string `json:"incompleteCategories"`

	// PreviousTasks are the titles of every task the user has tracked,
	// so the model can avoid duplicates.
	PreviousTasks []string `json:"previousTasks"`

	// AvailableCategories is the full set a suggestion may use.
	AvailableCategories []string `json:"availableCategories"`
}

// Provider defines the interface for generating task suggestions.
type Provider interface {
	// SuggestTasks returns a short list of new task suggestions for today.
	// An empty request yields an empty result without calling the model.
	SuggestTasks(ctx context.Context, req SuggestionRequest) ([]models.SuggestedTask, error)
}
