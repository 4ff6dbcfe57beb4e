/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/planner"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the day's progress and category breakdown",
	RunE:  runSummary,
}

var summaryDate string

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Date to summarize (YYYY-MM-DD, default today)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	day, err := parseDate(summaryDate)
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
	// Aggregates cover the whole day, completed tasks included.
	dayTasks := tasksDueOn(tasks, day)

	fmt.Println(ui.StyleSectionTitle.Render(day.Format("Monday, Jan 2")))
	fmt.Printf("\n %s\n\n", ui.RenderProgress(planner.ComputeProgress(dayTasks)))
	fmt.Print(ui.RenderCategoryBreakdown(planner.CategoryBreakdown(dayTasks)))
	return nil
}
