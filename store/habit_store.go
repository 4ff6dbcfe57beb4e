package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/dayflowhq/dayflow/models"
)

const (
	defaultHabitFile = "habits.json"
	habitFileKey     = "habitFile"
)

// FileHabitStore implements HabitStore on a JSON file. Habits are a small,
// append-mostly list, so it skips the checksum sidecar the task store carries
// and keeps only the lock and atomic rename.
type FileHabitStore struct {
	filePath string
	habits   map[string]models.Habit
	flk      *flock.Flock
}

// NewFileHabitStore creates a new instance; Initialize must be called before use.
func NewFileHabitStore() *FileHabitStore {
	return &FileHabitStore{habits: make(map[string]models.Habit)}
}

// Initialize configures the store from the 'habitFile' key and loads existing
// habits under an exclusive lock.
func (s *FileHabitStore) Initialize(config map[string]string) error {
	if val, ok := config[habitFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultHabitFile
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.loadInternal()
}

func (s *FileHabitStore) loadInternal() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.habits = make(map[string]models.Habit)
			return nil
		}
		return fmt.Errorf("failed to read habit file %s: %w", s.filePath, err)
	}
	if len(data) == 0 {
		s.habits = make(map[string]models.Habit)
		return nil
	}

	var list models.HabitList
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal habits from %s: %w", s.filePath, err)
	}
	s.habits = make(map[string]models.Habit, len(list.Habits))
	for _, h := range list.Habits {
		s.habits[h.ID] = h
	}
	return nil
}

func (s *FileHabitStore) saveInternal() error {
	list := models.HabitList{Habits: make([]models.Habit, 0, len(s.habits))}
	for _, h := range s.habits {
		list.Habits = append(list.Habits, h)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}

	tempFilePath := s.filePath + ".tmp"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err := os.WriteFile(tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary habit file %s: %w", tempFilePath, err)
	}
	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary habit file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	return nil
}

// AddHabit creates a new habit with an empty completion history.
func (s *FileHabitStore) AddHabit(title string) (models.Habit, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Habit{}, fmt.Errorf("could not lock habit file for add: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Habit{}, fmt.Errorf("failed to reload habits before add: %w", err)
	}

	habit := models.Habit{
		ID:          generateID(),
		Title:       title,
		Completions: map[string]bool{},
	}
	if err := models.ValidateStruct(habit); err != nil {
		return models.Habit{}, fmt.Errorf("validation failed for new habit: %w", err)
	}

	s.habits[habit.ID] = habit
	if err := s.saveInternal(); err != nil {
		_ = s.loadInternal()
		return models.Habit{}, fmt.Errorf("failed to save new habit: %w", err)
	}
	return habit, nil
}

// DeleteHabit removes a habit and its completion history.
func (s *FileHabitStore) DeleteHabit(id string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock habit file for delete: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return fmt.Errorf("failed to reload habits before delete: %w", err)
	}

	if _, ok := s.habits[id]; !ok {
		return fmt.Errorf("habit with ID '%s': %w", id, ErrHabitNotFound)
	}
	delete(s.habits, id)

	if err := s.saveInternal(); err != nil {
		_ = s.loadInternal()
		return fmt.Errorf("failed to save after deleting habit: %w", err)
	}
	return nil
}

// ToggleHabit flips the completion mark for one calendar date. An unset date
// becomes set; a set date is removed from the map entirely, mirroring how the
// completion history stays sparse.
func (s *FileHabitStore) ToggleHabit(id, date string) (models.Habit, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Habit{}, fmt.Errorf("could not lock habit file for toggle: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Habit{}, fmt.Errorf("failed to reload habits before toggle: %w", err)
	}

	habit, ok := s.habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit with ID '%s': %w", id, ErrHabitNotFound)
	}

	completions := make(map[string]bool, len(habit.Completions))
	for k, v := range habit.Completions {
		completions[k] = v
	}
	if completions[date] {
		delete(completions, date)
	} else {
		completions[date] = true
	}
	habit.Completions = completions

	s.habits[id] = habit
	if err := s.saveInternal(); err != nil {
		_ = s.loadInternal()
		return models.Habit{}, fmt.Errorf("failed to save habit %s after toggle: %w", id, err)
	}
	return habit, nil
}

// ListHabits returns the current habit snapshot.
func (s *FileHabitStore) ListHabits() ([]models.Habit, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for ListHabits: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return nil, fmt.Errorf("failed to load habits for ListHabits: %w", err)
	}

	habits := make([]models.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		habits = append(habits, h)
	}
	return habits, nil
}

// Close releases the file lock.
func (s *FileHabitStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
