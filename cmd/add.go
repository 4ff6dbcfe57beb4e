/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/models"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to your planner.

Examples:
  dayflow add "Water the plants" --category Home
  dayflow add "Quarterly review" --category Work --priority high --due 2026-04-01
  dayflow add "Standup" --category Work --start 09:00 --end 09:15
  dayflow add "Prepare talk" --subtask "Draft outline" --subtask "Build slides"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addCategory string
	addPriority string
	addDue      string
	addStart    string
	addEnd      string
	addSubtasks []string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addCategory, "category", "Personal", "Task category")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "Priority (high, medium, low, none)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD, today, tomorrow)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (HH:MM)")
	addCmd.Flags().StringArrayVar(&addSubtasks, "subtask", nil, "Subtask title (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	priority, err := parsePriority(addPriority)
	if err != nil {
		return err
	}

	task := models.Task{
		Title:     title,
		Category:  addCategory,
		Priority:  priority,
		StartTime: addStart,
		EndTime:   addEnd,
	}

	if addDue != "" {
		due, err := parseDate(addDue)
		if err != nil {
			return err
		}
		task.DueDate = &due
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	created, err := taskStore.AddTask(task)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	for _, subtaskTitle := range addSubtasks {
		subtaskTitle = strings.TrimSpace(subtaskTitle)
		if subtaskTitle == "" {
			continue
		}
		created, err = taskStore.AddSubtask(created.ID, subtaskTitle)
		if err != nil {
			return fmt.Errorf("failed to add subtask %q: %w", subtaskTitle, err)
		}
	}

	logVerbose("created task %s", created.ID)
	fmt.Printf("✓ Added: %s %s\n", created.Title, ui.TruncateID(created.ID))
	return nil
}
