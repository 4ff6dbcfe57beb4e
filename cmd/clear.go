/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task",
	Long:  `Delete every task and subtask. This cannot be undone; take a backup first if in doubt.`,
	RunE:  runClear,
}

var clearYes bool

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !confirmAction("Delete ALL tasks", clearYes) {
		fmt.Println("Aborted.")
		return nil
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	if err := taskStore.DeleteAllTasks(); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	fmt.Println("✓ All tasks deleted")
	return nil
}
