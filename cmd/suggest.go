/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/llm"
	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the AI for task suggestions",
	Long: `Ask the configured AI provider for a handful of new tasks, grounded
in the categories holding unfinished work and the tasks you already track.

Requires llm.provider and its credentials in configuration (or the
matching DAYFLOW_LLM_* environment variables).`,
	RunE: runSuggest,
}

var suggestAdd bool

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().BoolVar(&suggestAdd, "add", false, "Add the suggestions as tasks due today")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	config := GetConfig()

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	tasks, err := taskStore.ListTasks(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	sctx := planner.DeriveSuggestionContext(tasks)

	templatesDir := filepath.Join(config.Project.RootDir, "templates")
	provider, err := llm.NewProvider(context.Background(), &config.LLM, templatesDir)
	if err != nil {
		return fmt.Errorf("failed to create suggestion provider: %w", err)
	}

	timeout := 60 * time.Second
	if config.LLM.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(config.LLM.RequestTimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	spinner := ui.NewSpinner("Thinking...")
	spinner.Start()
	suggestions, err := provider.SuggestTasks(ctx, llm.SuggestionRequest{
		IncompleteCategories: sctx.IncompleteCategories,
		PreviousTasks:        sctx.AllTitles,
		AvailableCategories:  models.DefaultCategories,
	})
	spinner.Stop()
	if err != nil {
		// Suggestions are best-effort; a failed call shows a placeholder
		// instead of aborting the command.
		logVerbose("suggestion call failed: %v", err)
		fmt.Println(ui.StyleSubtle.Render("No suggestions available right now. Try again later."))
		return nil
	}

	if len(suggestions) == 0 {
		fmt.Println(ui.StyleSubtle.Render("Nothing to suggest yet. Add a few tasks first."))
		return nil
	}

	fmt.Println(ui.StyleSectionTitle.Render("Suggestions"))
	for _, s := range suggestions {
		fmt.Printf("  %s %s\n", ui.CategoryStyle(s.Category).Render("●"), s.Title)
	}

	if !suggestAdd {
		return nil
	}

	now := time.Now()
	for _, s := range suggestions {
		task := models.Task{
			Title:    s.Title,
			Category: s.Category,
			DueDate:  &now,
		}
		if _, err := taskStore.AddTask(task); err != nil {
			return fmt.Errorf("failed to add suggested task %q: %w", s.Title, err)
		}
	}
	fmt.Printf("✓ Added %d task(s) due today\n", len(suggestions))
	return nil
}
