package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dayflowhq/dayflow/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteTaskStore {
	t.Helper()

	store := NewSQLiteTaskStore()
	config := map[string]string{
		"dataFile": filepath.Join(t.TempDir(), "tasks.db"),
	}
	if err := store.Initialize(config); err != nil {
		t.Fatalf("Failed to initialize sqlite store: %v", err)
	}
	return store
}

func TestSQLiteTaskStore_BasicOperations(t *testing.T) {
	store := setupSQLiteStore(t)
	defer func() { _ = store.Close() }()

	created, err := store.AddTask(models.Task{
		Title:    "Test Task",
		Category: "Work",
		Priority: models.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Created task should have an ID")
	}

	retrieved, err := store.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if retrieved.Title != "Test Task" || retrieved.Priority != models.PriorityMedium {
		t.Errorf("Retrieved task mismatch: %+v", retrieved)
	}

	updated, err := store.UpdateTask(created.ID, map[string]interface{}{
		"title":    "Renamed",
		"priority": "high",
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Priority != models.PriorityHigh {
		t.Errorf("Updated task mismatch: %+v", updated)
	}

	if err := store.DeleteTask(created.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	_, err = store.GetTask(created.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestSQLiteTaskStore_SubtasksSurviveRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	defer func() { _ = store.Close() }()

	created, err := store.AddTask(models.Task{Title: "Parent", Category: "Work"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	for _, title := range []string{"first", "second", "third"} {
		if _, err := store.AddSubtask(created.ID, title); err != nil {
			t.Fatalf("AddSubtask(%q) failed: %v", title, err)
		}
	}

	retrieved, err := store.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if len(retrieved.Subtasks) != 3 {
		t.Fatalf("Expected 3 subtasks, got %d", len(retrieved.Subtasks))
	}
	// Order is insertion order.
	if retrieved.Subtasks[0].Title != "first" || retrieved.Subtasks[2].Title != "third" {
		t.Errorf("Subtask order lost: %+v", retrieved.Subtasks)
	}

	toggled, err := store.ToggleComplete(created.ID, "")
	if err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	for _, sub := range toggled.Subtasks {
		if !sub.IsCompleted {
			t.Errorf("Subtask %q should be completed by the cascade", sub.Title)
		}
	}

	reopened, err := store.ToggleComplete(created.ID, toggled.Subtasks[1].ID)
	if err != nil {
		t.Fatalf("ToggleComplete on subtask failed: %v", err)
	}
	if reopened.IsCompleted {
		t.Error("Parent should be incomplete while a subtask is open")
	}

	afterDelete, err := store.DeleteSubtask(created.ID, reopened.Subtasks[1].ID)
	if err != nil {
		t.Fatalf("DeleteSubtask failed: %v", err)
	}
	if len(afterDelete.Subtasks) != 2 {
		t.Errorf("Expected 2 subtasks, got %d", len(afterDelete.Subtasks))
	}
	if !afterDelete.IsCompleted {
		t.Error("Parent should be complete once the only open subtask is gone")
	}
}

func TestSQLiteTaskStore_DueDateRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	defer func() { _ = store.Close() }()

	created, err := store.AddTask(models.Task{Title: "Dated", Category: "Work"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	updated, err := store.UpdateTask(created.ID, map[string]interface{}{"dueDate": "2026-04-01"})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.DueDate == nil {
		t.Fatal("DueDate should be set")
	}

	retrieved, err := store.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if retrieved.DueDate == nil || !retrieved.DueDate.Equal(*updated.DueDate) {
		t.Errorf("DueDate mismatch after round trip: got %v, want %v", retrieved.DueDate, updated.DueDate)
	}

	cleared, err := store.UpdateTask(created.ID, map[string]interface{}{"dueDate": nil})
	if err != nil {
		t.Fatalf("UpdateTask clearing dueDate failed: %v", err)
	}
	if cleared.DueDate != nil {
		t.Error("DueDate should be cleared by nil")
	}
}

func TestSQLiteTaskStore_BackupRestore(t *testing.T) {
	store := setupSQLiteStore(t)
	defer func() { _ = store.Close() }()

	created, err := store.AddTask(models.Task{Title: "Keep me", Category: "Work"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	backupPath := filepath.Join(t.TempDir(), "backup.db")
	if err := store.Backup(backupPath); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	if err := store.DeleteAllTasks(); err != nil {
		t.Fatalf("DeleteAllTasks failed: %v", err)
	}
	if err := store.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	restored, err := store.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask after restore failed: %v", err)
	}
	if restored.Title != "Keep me" {
		t.Errorf("Restored title mismatch: got %q", restored.Title)
	}
}
