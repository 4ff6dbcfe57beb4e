/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle completion of a task or one subtask",
	Long: `Toggle completion state.

Toggling a task cascades the new state to every subtask. Toggling a
subtask with --subtask re-derives the parent: it completes when every
subtask is complete and reopens otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

var doneSubtaskID string

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().StringVar(&doneSubtaskID, "subtask", "", "Subtask ID to toggle instead of the whole task")
}

func runDone(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args, "Select a task to toggle")
	if err != nil {
		return err
	}

	toggled, err := taskStore.ToggleComplete(task.ID, doneSubtaskID)
	if err != nil {
		return fmt.Errorf("failed to toggle completion: %w", err)
	}

	state := "reopened"
	if toggled.IsCompleted {
		state = "completed"
	}
	fmt.Printf("✓ %s: %s\n", state, toggled.Title)
	return nil
}
