/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Short:   "Delete a task and its subtasks",
	Aliases: []string{"rm"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args, "Select a task to delete")
	if err != nil {
		return err
	}

	if !confirmAction(fmt.Sprintf("Delete %q", task.Title), deleteYes) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := taskStore.DeleteTask(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("✓ Deleted: %s\n", task.Title)
	return nil
}
