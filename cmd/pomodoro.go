/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/pomodoro"
	"github.com/dayflowhq/dayflow/internal/ui"
)

// pomodoroCmd represents the pomodoro command
var pomodoroCmd = &cobra.Command{
	Use:     "pomodoro",
	Short:   "Run the focus timer",
	Aliases: []string{"focus"},
	Long: `Run the focus timer in the terminal.

Work sessions alternate with short breaks; every fourth session earns
the long break. Durations come from the pomodoro section of the config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timer := pomodoro.NewTimer(GetConfig().Pomodoro)
		return ui.RunPomodoro(timer)
	},
}

func init() {
	rootCmd.AddCommand(pomodoroCmd)
}
