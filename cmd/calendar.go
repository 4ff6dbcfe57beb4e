/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:       "calendar [day|3day|week|month]",
	Short:     "Show tasks on a calendar",
	Aliases:   []string{"cal"},
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"day", "3day", "week", "month"},
	Long: `Show tasks bucketed by due date.

The day view renders an hour grid with timed tasks placed at their start
offset; multi-day views list each day's tasks in display order.`,
	RunE: runCalendar,
}

var calendarDate string

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVar(&calendarDate, "date", "", "Anchor date (YYYY-MM-DD, default today)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	view := "day"
	if len(args) > 0 {
		view = args[0]
	}

	anchor, err := parseDate(calendarDate)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	tasks, err := taskStore.ListTasks(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	cal := GetConfig().Calendar

	switch view {
	case "day":
		days := planner.DayRange(anchor, 1)
		buckets := planner.BucketByDay(tasks, days)
		fmt.Println(ui.StyleSectionTitle.Render(anchor.Format("Monday, Jan 2")))
		fmt.Print(ui.RenderTimeline(buckets[0], cal))

	case "3day":
		renderDays(planner.DayRange(anchor, 3), tasks)

	case "week":
		renderDays(planner.WeekOf(anchor), tasks)

	case "month":
		days := planner.MonthOf(anchor)
		buckets := planner.BucketByDay(tasks, days)
		fmt.Println(ui.StyleSectionTitle.Render(anchor.Format("January 2006")))
		for i, day := range days {
			if len(buckets[i]) == 0 {
				continue
			}
			progress := planner.ComputeProgress(buckets[i])
			fmt.Printf(" %s  %d task(s), %d done\n", day.Format("Mon 02"), progress.TotalCount, progress.CompletedCount)
		}

	default:
		return fmt.Errorf("unknown calendar view %q (use day, 3day, week, or month)", view)
	}
	return nil
}

// renderDays prints each day's tasks in display order.
func renderDays(days []time.Time, tasks []models.Task) {
	buckets := planner.BucketByDay(tasks, days)
	for i, day := range days {
		fmt.Println(ui.StyleSectionTitle.Render(day.Format("Mon, Jan 2")))
		bucket := planner.SortForDisplay(buckets[i])
		if len(bucket) == 0 {
			fmt.Println(ui.StyleSubtle.Render("  nothing due"))
			continue
		}
		fmt.Print(ui.RenderTaskList(bucket))
	}
}
