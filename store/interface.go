package store

import (
	"errors"

	"github.com/dayflowhq/dayflow/models"
)

// Sentinel errors shared by all store backends.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrHabitNotFound   = errors.New("habit not found")
)

// TaskStore is the persistence collaborator for tasks. It owns every
// mutation; derived views are computed elsewhere from the snapshot that
// ListTasks returns. After any mutation call returns, the next read reflects
// it.
type TaskStore interface {
	// Initialize configures the store (file path, data format or DSN) and
	// loads existing data. It must be called before any other operation.
	Initialize(config map[string]string) error

	// AddTask persists a new task. The store assigns ID, CreatedAt and
	// UpdatedAt; the draft's completion state and subtasks are kept as given.
	AddTask(task models.Task) (models.Task, error)

	// GetTask retrieves a task by ID.
	GetTask(id string) (models.Task, error)

	// UpdateTask applies a field-name-to-value update map to an existing task
	// and returns the updated task.
	UpdateTask(id string, updates map[string]interface{}) (models.Task, error)

	// DeleteTask removes a task and its subtasks.
	DeleteTask(id string) error

	// DeleteAllTasks removes every task. Destructive; the command layer
	// confirms first.
	DeleteAllTasks() error

	// ToggleComplete flips completion state. With an empty subtaskID the
	// parent toggles and the new state cascades to every subtask. With a
	// subtaskID the subtask toggles and the parent's completion is recomputed
	// as "all subtasks complete", in both directions.
	ToggleComplete(id, subtaskID string) (models.Task, error)

	// AddSubtask appends a new incomplete subtask to a task.
	AddSubtask(taskID, title string) (models.Task, error)

	// DeleteSubtask removes a subtask from its parent. Remaining subtask IDs
	// are stable; no renumbering happens.
	DeleteSubtask(taskID, subtaskID string) (models.Task, error)

	// ListTasks returns the current snapshot, optionally filtered and sorted.
	ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error)

	// Backup copies the current data to the destination path.
	Backup(destinationPath string) error

	// Restore replaces the current data with the backup at sourcePath.
	Restore(sourcePath string) error

	// Close releases file locks or database handles.
	Close() error
}

// HabitStore is the persistence collaborator for habits.
type HabitStore interface {
	Initialize(config map[string]string) error
	AddHabit(title string) (models.Habit, error)
	DeleteHabit(id string) error
	// ToggleHabit flips the completion mark for one calendar date
	// ("2006-01-02"). An unset date becomes set; a set date is cleared.
	ToggleHabit(id, date string) (models.Habit, error)
	ListHabits() ([]models.Habit, error)
	Close() error
}
