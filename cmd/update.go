/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update fields of a task",
	Long: `Update a task. Only the fields named by flags change.

Examples:
  dayflow update 3f2a --title "New title" --priority low
  dayflow update 3f2a --due tomorrow
  dayflow update 3f2a --clear-due`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

var (
	updateTitle    string
	updateCategory string
	updatePriority string
	updateDue      string
	updateStart    string
	updateEnd      string
	updateClearDue bool
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "New category")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "New priority (high, medium, low, none)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (YYYY-MM-DD, today, tomorrow)")
	updateCmd.Flags().StringVar(&updateStart, "start", "", "New start time (HH:MM)")
	updateCmd.Flags().StringVar(&updateEnd, "end", "", "New end time (HH:MM)")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "Remove the due date")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args, "Select a task to update")
	if err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if cmd.Flags().Changed("title") {
		updates["title"] = updateTitle
	}
	if cmd.Flags().Changed("category") {
		updates["category"] = updateCategory
	}
	if cmd.Flags().Changed("priority") {
		priority, err := parsePriority(updatePriority)
		if err != nil {
			return err
		}
		updates["priority"] = string(priority)
	}
	if updateClearDue {
		updates["dueDate"] = nil
	} else if cmd.Flags().Changed("due") {
		due, err := parseDate(updateDue)
		if err != nil {
			return err
		}
		updates["dueDate"] = due
	}
	if cmd.Flags().Changed("start") {
		updates["startTime"] = updateStart
	}
	if cmd.Flags().Changed("end") {
		updates["endTime"] = updateEnd
	}

	if len(updates) == 0 {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	updated, err := taskStore.UpdateTask(task.ID, updates)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("✓ Updated: %s\n", updated.Title)
	return nil
}
