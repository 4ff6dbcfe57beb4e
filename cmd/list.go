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

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in display order: incomplete before complete, then by
priority, then newest first.

By default only incomplete tasks due today are shown; use --all for
everything, including undated and completed tasks.`,
	RunE: runList,
}

var (
	listAll      bool
	listCategory string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show every task, not just today's")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only tasks in this category")
}

func runList(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	var filterFn func(models.Task) bool
	if listCategory != "" {
		filterFn = func(t models.Task) bool { return t.Category == listCategory }
	}

	tasks, err := taskStore.ListTasks(filterFn, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	visible := tasks
	if !listAll {
		visible = planner.FilterDueToday(tasks, time.Now())
	}
	visible = planner.SortForDisplay(visible)

	fmt.Print(ui.RenderTaskList(visible))

	// Progress counts the full day (or everything with --all), not just the
	// incomplete tasks shown above.
	progressSet := tasks
	if !listAll {
		progressSet = tasksDueOn(tasks, time.Now())
	}
	progress := planner.ComputeProgress(progressSet)
	if progress.TotalCount > 0 {
		fmt.Printf("\n %s\n", ui.RenderProgress(progress))
	}
	return nil
}
