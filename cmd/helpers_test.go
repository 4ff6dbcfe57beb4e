package cmd

import (
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    models.TaskPriority
		wantErr bool
	}{
		{"", models.PriorityNone, false},
		{"high", models.PriorityHigh, false},
		{"HIGH", models.PriorityHigh, false},
		{" medium ", models.PriorityMedium, false},
		{"low", models.PriorityLow, false},
		{"none", models.PriorityNone, false},
		{"urgent", "", true},
	}

	for _, tc := range tests {
		got, err := parsePriority(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("parsePriority(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parsePriority(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	now := time.Now()

	today, err := parseDate("today")
	if err != nil {
		t.Fatalf("parseDate(today) error: %v", err)
	}
	if today.YearDay() != now.YearDay() {
		t.Errorf("parseDate(today) = %v, want today's date", today)
	}

	tomorrow, err := parseDate("tomorrow")
	if err != nil {
		t.Fatalf("parseDate(tomorrow) error: %v", err)
	}
	if !tomorrow.After(now) {
		t.Errorf("parseDate(tomorrow) = %v, want after now", tomorrow)
	}

	fixed, err := parseDate("2026-04-01")
	if err != nil {
		t.Fatalf("parseDate(2026-04-01) error: %v", err)
	}
	if fixed.Year() != 2026 || fixed.Month() != time.April || fixed.Day() != 1 {
		t.Errorf("parseDate(2026-04-01) = %v", fixed)
	}

	if _, err := parseDate("04/01/2026"); err == nil {
		t.Error("expected an error for a slash-formatted date")
	}
}

func TestTasksDueOnCountsCompleted(t *testing.T) {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	tasks := []models.Task{
		{ID: "1", Title: "done one", DueDate: &now, IsCompleted: true},
		{ID: "2", Title: "done two", DueDate: &now, IsCompleted: true},
		{ID: "3", Title: "open", DueDate: &now},
		{ID: "4", Title: "later", DueDate: &tomorrow},
		{ID: "5", Title: "undated"},
	}

	dayTasks := tasksDueOn(tasks, now)
	if len(dayTasks) != 3 {
		t.Fatalf("tasksDueOn returned %d tasks, want 3", len(dayTasks))
	}

	// Day progress counts finished work; the actionable filter does not.
	progress := planner.ComputeProgress(dayTasks)
	if progress.CompletedCount != 2 || progress.TotalCount != 3 {
		t.Errorf("day progress = %d/%d, want 2/3", progress.CompletedCount, progress.TotalCount)
	}
	if progress.Percent == 0 {
		t.Error("day with completed tasks reported zero percent")
	}

	actionable := planner.FilterDueToday(tasks, now)
	if len(actionable) != 1 || actionable[0].ID != "3" {
		t.Errorf("FilterDueToday = %v, want only the open task", actionable)
	}
}
