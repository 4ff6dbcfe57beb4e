package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel returns a canned response and records the messages it saw.
type fakeChatModel struct {
	response string
	err      error
	messages []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.response, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported in tests")
}

func TestSuggestTasks_ParsesResponse(t *testing.T) {
	fake := &fakeChatModel{
		response: `[{"title": "Review budget", "category": "Finance"}, {"title": "Stretch", "category": "Health"}]`,
	}
	provider := NewChatProvider(fake, "system prompt", false)

	got, err := provider.SuggestTasks(context.Background(), SuggestionRequest{
		IncompleteCategories: []string{"Finance"},
		PreviousTasks:        []string{"Pay rent"},
		AvailableCategories:  []string{"Finance", "Health"},
	})
	if err != nil {
		t.Fatalf("SuggestTasks failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(got))
	}
	if got[0].Title != "Review budget" || got[0].Category != "Finance" {
		t.Errorf("Unexpected first suggestion: %+v", got[0])
	}

	// The system prompt leads, the JSON payload follows.
	if len(fake.messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(fake.messages))
	}
	if fake.messages[0].Role != schema.System {
		t.Errorf("First message should be the system prompt, got role %q", fake.messages[0].Role)
	}
}

func TestSuggestTasks_DropsUnknownCategories(t *testing.T) {
	fake := &fakeChatModel{
		response: `[{"title": "Valid", "category": "Work"}, {"title": "Invalid", "category": "Cooking"}, {"title": "", "category": "Work"}]`,
	}
	provider := NewChatProvider(fake, "system prompt", false)

	got, err := provider.SuggestTasks(context.Background(), SuggestionRequest{
		IncompleteCategories: []string{"Work"},
		AvailableCategories:  []string{"Work"},
	})
	if err != nil {
		t.Fatalf("SuggestTasks failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Valid" {
		t.Errorf("Expected only the valid suggestion, got %+v", got)
	}
}

func TestSuggestTasks_EmptyRequestShortCircuits(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("must not be called")}
	provider := NewChatProvider(fake, "system prompt", false)

	got, err := provider.SuggestTasks(context.Background(), SuggestionRequest{
		AvailableCategories: []string{"Work"},
	})
	if err != nil {
		t.Fatalf("SuggestTasks failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no suggestions for an empty request, got %+v", got)
	}
	if fake.messages != nil {
		t.Error("Model should not be called for an empty request")
	}
}

func TestSuggestTasks_FencedResponse(t *testing.T) {
	fake := &fakeChatModel{
		response: "```json\n[{\"title\": \"Walk\", \"category\": \"Health\"}]\n```",
	}
	provider := NewChatProvider(fake, "system prompt", false)

	got, err := provider.SuggestTasks(context.Background(), SuggestionRequest{
		IncompleteCategories: []string{"Health"},
		AvailableCategories:  []string{"Health"},
	})
	if err != nil {
		t.Fatalf("SuggestTasks failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Walk" {
		t.Errorf("Unexpected suggestions: %+v", got)
	}
}

func TestSuggestTasks_GenerateError(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("rate limited")}
	provider := NewChatProvider(fake, "system prompt", false)

	_, err := provider.SuggestTasks(context.Background(), SuggestionRequest{
		IncompleteCategories: []string{"Work"},
		AvailableCategories:  []string{"Work"},
	})
	if err == nil {
		t.Error("Expected the generate error to propagate")
	}
}
