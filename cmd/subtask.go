/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// subtaskCmd groups subtask operations.
var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage subtasks of a task",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <task-id> <title>",
	Short: "Add a subtask to a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args[1:], " "))
		if title == "" {
			return fmt.Errorf("subtask title cannot be empty")
		}

		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = taskStore.Close() }()

		task, err := taskStore.AddSubtask(args[0], title)
		if err != nil {
			return fmt.Errorf("failed to add subtask: %w", err)
		}

		fmt.Printf("✓ Added subtask to %s (%d total)\n", task.Title, len(task.Subtasks))
		return nil
	},
}

var subtaskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id> <subtask-id>",
	Short: "Delete a subtask from a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = taskStore.Close() }()

		task, err := taskStore.DeleteSubtask(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to delete subtask: %w", err)
		}

		fmt.Printf("✓ Deleted subtask from %s (%d remaining)\n", task.Title, len(task.Subtasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subtaskCmd)
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskDeleteCmd)
}
