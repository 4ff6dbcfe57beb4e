/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dayflowhq/dayflow/internal/logger"
	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "Dayflow CLI helps you plan your day.",
	Long: `Dayflow CLI is a daily planner for the command line.
It tracks tasks with subtasks, renders calendar views, follows habits,
runs a focus timer, and can ask an AI for task suggestions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logger.SetVersion(version)
	logger.SetCommand(strings.Join(os.Args, " "))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.dayflow.yaml or ./.dayflow.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Version = version
}

// GetTaskFilePath returns the full path to the tasks file.
func GetTaskFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Data.File)
}

// GetHabitFilePath returns the full path to the habits file.
func GetHabitFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Data.HabitFile)
}

// GetStore initializes and returns the task store selected by data.format:
// sqlite opens the embedded database backend, everything else the file store.
func GetStore() (store.TaskStore, error) {
	config := GetConfig()
	taskFilePath := GetTaskFilePath()

	var s store.TaskStore
	cfg := map[string]string{"dataFile": taskFilePath}
	if config.Data.Format == "sqlite" {
		s = store.NewSQLiteTaskStore()
	} else {
		s = store.NewFileTaskStore()
		cfg["dataFileFormat"] = config.Data.Format
	}

	if err := s.Initialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", taskFilePath, err)
	}
	return s, nil
}

// GetHabitStore initializes and returns the habit store.
func GetHabitStore() (store.HabitStore, error) {
	s := store.NewFileHabitStore()
	habitFilePath := GetHabitFilePath()

	if err := s.Initialize(map[string]string{"habitFile": habitFilePath}); err != nil {
		return nil, fmt.Errorf("failed to initialize habit store at %s: %w", habitFilePath, err)
	}
	return s, nil
}

// selectTaskInteractive presents a prompt to the user to select a task from a list.
// It can be filtered using the provided filter function.
func selectTaskInteractive(taskStore store.TaskStore, filterFn func(models.Task) bool, label string) (models.Task, error) {
	tasks, err := taskStore.ListTasks(filterFn, nil)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to list tasks for selection: %w", err)
	}

	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} (ID: {{ .ID }}, Category: {{ .Category }})`,
		Inactive: `  {{ .Title | faint }} (ID: {{ .ID }}, Category: {{ .Category }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }} (ID: {{ .ID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Title:\t" | faint }} {{ .Title }}
{{ "Category:\t" | faint }} {{ .Category }}
{{ "Priority:\t" | faint }} {{ .Priority }}
{{ "Completed:\t" | faint }} {{ .IsCompleted }}`,
	}

	searcher := func(input string, index int) bool {
		task := tasks[index]
		name := strings.ToLower(task.Title)
		id := task.ID
		input = strings.ToLower(input)
		return strings.Contains(name, input) || strings.Contains(id, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err // Return error as is (includes promptui.ErrInterrupt)
	}

	return tasks[i], nil
}

// resolveTask picks a task by ID argument, or interactively when none given.
func resolveTask(taskStore store.TaskStore, args []string, label string) (models.Task, error) {
	if len(args) > 0 {
		return taskStore.GetTask(args[0])
	}
	return selectTaskInteractive(taskStore, nil, label)
}
