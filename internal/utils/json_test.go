package utils

import (
	"testing"
)

type suggestion struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func TestExtractAndParseJSON_CleanArray(t *testing.T) {
	input := `[{"title": "Plan week", "category": "Work"}]`

	got, err := ExtractAndParseJSON[[]suggestion](input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Plan week" || got[0].Category != "Work" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestExtractAndParseJSON_MarkdownFences(t *testing.T) {
	input := "```json\n[{\"title\": \"Stretch\", \"category\": \"Health\"}]\n```"

	got, err := ExtractAndParseJSON[[]suggestion](input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Health" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestExtractAndParseJSON_SurroundingProse(t *testing.T) {
	input := `Here are your tasks: [{"title": "Pay rent", "category": "Finance"}] Hope that helps!`

	got, err := ExtractAndParseJSON[[]suggestion](input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Pay rent" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestExtractAndParseJSON_Repairs(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"trailing comma", `[{"title": "a", "category": "Work",},]`},
		{"single-quoted keys", `[{'title': "a", 'category': "Work"}]`},
		{"single-quoted values", `[{"title": 'a', "category": 'Work'}]`},
		{"truncated", `[{"title": "a", "category": "Work`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractAndParseJSON[[]suggestion](tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 1 || got[0].Title != "a" {
				t.Errorf("unexpected result: %+v", got)
			}
		})
	}
}

func TestExtractAndParseJSON_NoJSON(t *testing.T) {
	if _, err := ExtractAndParseJSON[[]suggestion]("no structured data here"); err == nil {
		t.Error("expected an error for a response without JSON")
	}
	if _, err := ExtractAndParseJSON[[]suggestion](""); err == nil {
		t.Error("expected an error for an empty response")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate short: got %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("Truncate long: got %q", got)
	}
	if got := Truncate("héllo wörld", 8); got != "héllo..." {
		t.Errorf("Truncate unicode: got %q", got)
	}
	if got := Truncate("abc", 2); got != "ab" {
		t.Errorf("Truncate tiny: got %q", got)
	}
}
