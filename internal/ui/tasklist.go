package ui

import (
	"fmt"
	"strings"

	"github.com/dayflowhq/dayflow/internal/utils"
	"github.com/dayflowhq/dayflow/models"
)

// RenderTaskList renders tasks as a table with one indented line per subtask.
func RenderTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render("No tasks.") + "\n"
	}

	table := &Table{
		Headers:  []string{"", "ID", "Title", "Category", "Priority", "Due", "Time"},
		MaxWidth: 40,
	}
	for _, task := range tasks {
		table.Rows = append(table.Rows, taskRow(task))
	}

	var sb strings.Builder
	sb.WriteString(table.Render())

	for _, task := range tasks {
		if len(task.Subtasks) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(" %s %s\n", StyleSubtle.Render("↳"), StyleTitle.Render(utils.Truncate(task.Title, 40))))
		for _, sub := range task.Subtasks {
			title := sub.Title
			if sub.IsCompleted {
				title = StyleDone.Render(title)
			}
			sb.WriteString(fmt.Sprintf("   %s %s %s\n", CheckboxIcon(sub.IsCompleted), title, StyleSubtle.Render(TruncateID(sub.ID))))
		}
	}
	return sb.String()
}

func taskRow(task models.Task) []string {
	title := utils.Truncate(task.Title, 40)
	if task.IsCompleted {
		title = StyleDone.Render(title)
	}

	due := ""
	if task.DueDate != nil {
		due = task.DueDate.Format("2006-01-02")
	}
	span := ""
	if task.IsTimed() {
		span = task.StartTime + "–" + task.EndTime
	}

	return []string{
		CheckboxIcon(task.IsCompleted),
		TruncateID(task.ID),
		title,
		CategoryStyle(task.Category).Render(task.Category),
		PriorityStyle(task.Priority).Render(string(task.Priority)),
		due,
		span,
	}
}
