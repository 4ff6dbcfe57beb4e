/*
Copyright © 2025 Dayflow Authors
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/ui"
	"github.com/dayflowhq/dayflow/planner"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the data file and re-render today's list on change",
	Long: `Watch the task data file and re-render today's list whenever it
changes, so a terminal can act as an always-current dashboard next to
other dayflow invocations. Ctrl+C stops watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	taskFilePath := GetTaskFilePath()
	// Watch the directory: atomic saves replace the file, and a watch on
	// the old inode would go stale after the first rename.
	watchDir := filepath.Dir(taskFilePath)
	if err := os.MkdirAll(watchDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", watchDir, err)
	}
	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchDir, err)
	}

	if err := renderToday(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Debounce: a save touches the data file and its checksum in quick
	// succession; collapse the burst into one redraw.
	var pending *time.Timer
	redraw := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(taskFilePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case redraw <- struct{}{}:
				default:
				}
			})

		case <-redraw:
			if err := renderToday(); err != nil {
				fmt.Fprintf(os.Stderr, "render error: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)

		case <-sigCh:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}

// renderToday clears the screen and prints today's tasks in display order.
func renderToday() error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	tasks, err := taskStore.ListTasks(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	today := planner.SortForDisplay(planner.FilterDueToday(tasks, time.Now()))

	fmt.Print("\033[2J\033[H") // Clear screen, cursor home
	fmt.Println(ui.StyleSectionTitle.Render(time.Now().Format("Monday, Jan 2 15:04")))
	fmt.Print(ui.RenderTaskList(today))
	progress := planner.ComputeProgress(tasksDueOn(tasks, time.Now()))
	if progress.TotalCount > 0 {
		fmt.Printf("\n %s\n", ui.RenderProgress(progress))
	}
	fmt.Println(ui.StyleSubtle.Render("\nwatching for changes · ctrl+c to quit"))
	return nil
}
