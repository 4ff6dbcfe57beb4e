/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show one task in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args, "Select a task to show")
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.CheckboxIcon(task.IsCompleted), ui.StyleTitle.Render(task.Title))
	fmt.Printf("  ID:       %s\n", task.ID)
	fmt.Printf("  Category: %s\n", ui.CategoryStyle(task.Category).Render(task.Category))
	fmt.Printf("  Priority: %s\n", ui.PriorityStyle(task.Priority).Render(string(task.Priority)))
	if task.DueDate != nil {
		fmt.Printf("  Due:      %s\n", task.DueDate.Format("2006-01-02"))
	}
	if task.IsTimed() {
		fmt.Printf("  Time:     %s–%s\n", task.StartTime, task.EndTime)
	}
	fmt.Printf("  Created:  %s\n", task.CreatedTime().Format("2006-01-02 15:04"))

	if len(task.Subtasks) > 0 {
		fmt.Println("  Subtasks:")
		for _, sub := range task.Subtasks {
			fmt.Printf("    %s %s %s\n", ui.CheckboxIcon(sub.IsCompleted), sub.Title, ui.StyleSubtle.Render(ui.TruncateID(sub.ID)))
		}
	}
	return nil
}
