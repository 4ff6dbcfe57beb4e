package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dayflowhq/dayflow/internal/utils"
	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
	"github.com/dayflowhq/dayflow/types"
)

// RenderTimeline renders one day as an hour grid. All-day tasks are listed
// first; timed tasks are placed on the hour row their start offset falls in,
// with tasks starting before the grid pinned to the first row.
func RenderTimeline(tasks []models.Task, cal types.CalendarConfig) string {
	allDay, timed := planner.PartitionAllDayVsTimed(tasks)

	var sb strings.Builder

	if len(allDay) > 0 {
		sb.WriteString(StyleSectionTitle.Render("All day") + "\n")
		for _, task := range allDay {
			sb.WriteString(fmt.Sprintf("  %s %s\n", CheckboxIcon(task.IsCompleted), taskLabel(task)))
		}
		sb.WriteString("\n")
	}

	// One terminal row per hour; offsets are computed in hour units.
	rows := make(map[int][]models.Task)
	for _, task := range timed {
		offset := planner.TimelineOffset(task, cal.DayStartHour, 1)
		row := int(math.Floor(offset.Top))
		if row < 0 {
			row = 0
		}
		lastRow := cal.DayEndHour - cal.DayStartHour - 1
		if row > lastRow {
			row = lastRow
		}
		rows[row] = append(rows[row], task)
	}
	for _, bucket := range rows {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].StartTime < bucket[j].StartTime })
	}

	for hour := cal.DayStartHour; hour < cal.DayEndHour; hour++ {
		label := StyleSubtle.Render(fmt.Sprintf("%02d:00", hour))
		bucket := rows[hour-cal.DayStartHour]
		if len(bucket) == 0 {
			sb.WriteString(fmt.Sprintf(" %s %s\n", label, StyleSubtle.Render("·")))
			continue
		}
		var entries []string
		for _, task := range bucket {
			entries = append(entries, fmt.Sprintf("%s %s %s", CheckboxIcon(task.IsCompleted), taskLabel(task),
				StyleSubtle.Render(task.StartTime+"–"+task.EndTime)))
		}
		sb.WriteString(fmt.Sprintf(" %s %s\n", label, strings.Join(entries, "  ")))
	}

	return sb.String()
}

func taskLabel(task models.Task) string {
	title := utils.Truncate(task.Title, 32)
	if task.IsCompleted {
		title = StyleDone.Render(title)
	}
	return CategoryStyle(task.Category).Render("●") + " " + title
}
