/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/planner"
)

// habitCmd groups habit operations.
var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Track daily habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Start tracking a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("habit title cannot be empty")
		}

		habitStore, err := GetHabitStore()
		if err != nil {
			return err
		}
		defer func() { _ = habitStore.Close() }()

		habit, err := habitStore.AddHabit(title)
		if err != nil {
			return fmt.Errorf("failed to add habit: %w", err)
		}

		fmt.Printf("✓ Tracking: %s %s\n", habit.Title, ui.TruncateID(habit.ID))
		return nil
	},
}

var habitDoneDate string

var habitDoneCmd = &cobra.Command{
	Use:   "done <habit-id>",
	Short: "Toggle a habit's completion for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDate(habitDoneDate)
		if err != nil {
			return err
		}
		date := day.Format(planner.HabitDateFormat)

		habitStore, err := GetHabitStore()
		if err != nil {
			return err
		}
		defer func() { _ = habitStore.Close() }()

		habit, err := habitStore.ToggleHabit(args[0], date)
		if err != nil {
			return fmt.Errorf("failed to toggle habit: %w", err)
		}

		state := "unmarked"
		if habit.Completions[date] {
			state = "done"
		}
		fmt.Printf("✓ %s %s on %s\n", habit.Title, state, date)
		return nil
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <habit-id>",
	Short: "Stop tracking a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		habitStore, err := GetHabitStore()
		if err != nil {
			return err
		}
		defer func() { _ = habitStore.Close() }()

		if err := habitStore.DeleteHabit(args[0]); err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		fmt.Println("✓ Habit deleted")
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with this week's marks and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		habitStore, err := GetHabitStore()
		if err != nil {
			return err
		}
		defer func() { _ = habitStore.Close() }()

		habits, err := habitStore.ListHabits()
		if err != nil {
			return fmt.Errorf("failed to list habits: %w", err)
		}
		if len(habits) == 0 {
			fmt.Println(ui.StyleSubtle.Render("No habits tracked yet."))
			return nil
		}
		sort.Slice(habits, func(i, j int) bool { return habits[i].Title < habits[j].Title })

		now := time.Now()
		for _, habit := range habits {
			streak := planner.HabitStreak(habit, now)
			week := planner.HabitWeek(habit, now)
			fmt.Printf(" %s  %s  %s  %s\n",
				ui.StyleTitle.Render(habit.Title),
				ui.RenderHabitWeek(week),
				ui.StyleSubtle.Render(fmt.Sprintf("streak %d", streak)),
				ui.StyleSubtle.Render(ui.TruncateID(habit.ID)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitDoneCmd)
	habitCmd.AddCommand(habitDeleteCmd)
	habitCmd.AddCommand(habitListCmd)

	habitDoneCmd.Flags().StringVar(&habitDoneDate, "date", "", "Date to toggle (YYYY-MM-DD, default today)")
}
