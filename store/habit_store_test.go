package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupHabitStore(t *testing.T) *FileHabitStore {
	t.Helper()

	store := NewFileHabitStore()
	config := map[string]string{
		"habitFile": filepath.Join(t.TempDir(), "habits.json"),
	}
	if err := store.Initialize(config); err != nil {
		t.Fatalf("Failed to initialize habit store: %v", err)
	}
	return store
}

func TestFileHabitStore_Lifecycle(t *testing.T) {
	store := setupHabitStore(t)
	defer func() { _ = store.Close() }()

	habit, err := store.AddHabit("Stretch")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if habit.ID == "" {
		t.Error("Habit should have an ID")
	}
	if len(habit.Completions) != 0 {
		t.Errorf("New habit should have no completions, got %d", len(habit.Completions))
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("Expected 1 habit, got %d", len(habits))
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	err = store.DeleteHabit(habit.ID)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("Expected ErrHabitNotFound, got %v", err)
	}
}

func TestFileHabitStore_Toggle(t *testing.T) {
	store := setupHabitStore(t)
	defer func() { _ = store.Close() }()

	habit, err := store.AddHabit("Read")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	const date = "2026-03-14"

	toggled, err := store.ToggleHabit(habit.ID, date)
	if err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}
	if !toggled.Completions[date] {
		t.Errorf("Date %s should be marked done", date)
	}

	// Toggling again clears the date from the map entirely.
	toggled, err = store.ToggleHabit(habit.ID, date)
	if err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}
	if _, ok := toggled.Completions[date]; ok {
		t.Errorf("Date %s should be removed after the second toggle", date)
	}

	_, err = store.ToggleHabit("missing", date)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("Expected ErrHabitNotFound, got %v", err)
	}
}

func TestFileHabitStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")

	store := NewFileHabitStore()
	if err := store.Initialize(map[string]string{"habitFile": path}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	habit, err := store.AddHabit("Walk")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if _, err := store.ToggleHabit(habit.ID, "2026-03-14"); err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}
	_ = store.Close()

	reopened := NewFileHabitStore()
	if err := reopened.Initialize(map[string]string{"habitFile": path}); err != nil {
		t.Fatalf("Re-initialize failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	habits, err := reopened.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("Expected 1 habit after reopen, got %d", len(habits))
	}
	if !habits[0].Completions["2026-03-14"] {
		t.Error("Completion mark should survive a reopen")
	}
}
