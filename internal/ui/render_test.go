package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
	"github.com/dayflowhq/dayflow/types"
)

func uiTask(title, category, start, end string) models.Task {
	return models.Task{
		ID:        "id-" + title,
		Title:     title,
		Category:  category,
		Priority:  models.PriorityNone,
		StartTime: start,
		EndTime:   end,
	}
}

func TestRenderTaskList(t *testing.T) {
	tasks := []models.Task{
		uiTask("Walk the dog", "Health", "", ""),
		{
			ID:       "id-sub",
			Title:    "Prepare talk",
			Category: "Work",
			Priority: models.PriorityHigh,
			Subtasks: []models.Subtask{
				{ID: "s1", Title: "Draft outline", IsCompleted: true},
				{ID: "s2", Title: "Build slides"},
			},
		},
	}

	output := RenderTaskList(tasks)

	assert.Contains(t, output, "Walk the dog")
	assert.Contains(t, output, "Prepare talk")
	assert.Contains(t, output, "Draft outline")
	assert.Contains(t, output, "Build slides")

	assert.Contains(t, RenderTaskList(nil), "No tasks")
}

func TestRenderTimeline(t *testing.T) {
	cal := types.CalendarConfig{DayStartHour: 7, DayEndHour: 12, UnitsPerHour: 5}
	tasks := []models.Task{
		uiTask("Standup", "Work", "09:00", "09:30"),
		uiTask("Groceries", "Errands", "", ""),
		// Before the grid start: pinned to the first row.
		uiTask("Early run", "Health", "06:00", "06:45"),
	}

	output := RenderTimeline(tasks, cal)

	assert.Contains(t, output, "All day")
	assert.Contains(t, output, "Groceries")
	assert.Contains(t, output, "Standup")
	assert.Contains(t, output, "09:00")
	assert.Contains(t, output, "Early run")
	assert.Contains(t, output, "07:00")
	assert.NotContains(t, output, "12:00")
}

func TestRenderProgress(t *testing.T) {
	output := RenderProgress(planner.Progress{CompletedCount: 1, TotalCount: 3, Percent: 33.33})
	assert.Contains(t, output, "1/3")
	assert.Contains(t, output, "33%")

	empty := RenderProgress(planner.Progress{})
	assert.Contains(t, empty, "0/0")
}

func TestRenderCategoryBreakdown(t *testing.T) {
	output := RenderCategoryBreakdown([]planner.CategoryCount{
		{Category: "Work", Completed: 2, Pending: 1},
		{Category: "Health", Completed: 0, Pending: 1},
	})
	assert.Contains(t, output, "Work")
	assert.Contains(t, output, "2/3 done")
	assert.Contains(t, output, "Health")
}

func TestRenderHabitWeek(t *testing.T) {
	output := RenderHabitWeek([]bool{true, false, true, false, false, false, false})
	assert.NotEmpty(t, output)
}
