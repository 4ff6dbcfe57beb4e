package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPrompt_Default(t *testing.T) {
	prompt, err := GetPrompt(KeySuggestTasks, "")
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	for _, expected := range []string{"suggest", "category", "JSON"} {
		if !strings.Contains(strings.ToLower(prompt), strings.ToLower(expected)) {
			t.Errorf("GetPrompt(%v) missing expected content %q", KeySuggestTasks, expected)
		}
	}
}

func TestGetPrompt_CustomOverride(t *testing.T) {
	templatesDir := t.TempDir()
	custom := "my custom suggestion prompt"
	path := filepath.Join(templatesDir, "suggest_tasks_prompt.txt")
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write custom prompt: %v", err)
	}

	prompt, err := GetPrompt(KeySuggestTasks, templatesDir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if prompt != custom {
		t.Errorf("GetPrompt() = %q, want the custom file content", prompt)
	}
}

func TestGetPrompt_UnknownKey(t *testing.T) {
	if _, err := GetPrompt(PromptKey("Nope"), ""); err == nil {
		t.Error("expected an error for an unknown prompt key")
	}
}
