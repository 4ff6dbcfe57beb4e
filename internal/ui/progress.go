package ui

import (
	"fmt"
	"strings"

	"github.com/dayflowhq/dayflow/planner"
)

const progressBarWidth = 24

// RenderProgress renders the day's completion as a bar with counts.
func RenderProgress(p planner.Progress) string {
	filled := 0
	if p.TotalCount > 0 {
		filled = int(p.Percent / 100 * progressBarWidth)
	}
	if filled > progressBarWidth {
		filled = progressBarWidth
	}

	bar := StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleSubtle.Render(strings.Repeat("░", progressBarWidth-filled))
	return fmt.Sprintf("%s %d/%d (%.0f%%)", bar, p.CompletedCount, p.TotalCount, p.Percent)
}

// RenderCategoryBreakdown renders per-category completed/pending counts in
// the order the categories first appear.
func RenderCategoryBreakdown(counts []planner.CategoryCount) string {
	if len(counts) == 0 {
		return StyleSubtle.Render("No tasks.") + "\n"
	}

	var sb strings.Builder
	for _, c := range counts {
		total := c.Completed + c.Pending
		sb.WriteString(fmt.Sprintf(" %s %s %s\n",
			CategoryStyle(c.Category).Render("●"),
			padRight(c.Category, 10),
			StyleSubtle.Render(fmt.Sprintf("%d/%d done", c.Completed, total))))
	}
	return sb.String()
}

// RenderHabitWeek renders seven day cells, Monday first.
func RenderHabitWeek(week []bool) string {
	labels := []string{"M", "T", "W", "T", "F", "S", "S"}
	cells := make([]string, 0, len(week))
	for i, done := range week {
		label := labels[i%len(labels)]
		if done {
			cells = append(cells, StyleSuccess.Render(label))
		} else {
			cells = append(cells, StyleSubtle.Render(label))
		}
	}
	return strings.Join(cells, " ")
}
