package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"

	"github.com/dayflowhq/dayflow/models"
)

const (
	defaultDataFile   = "tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// FileTaskStore implements TaskStore on a single data file. It supports JSON,
// YAML, and TOML formats, guards concurrent processes with a file lock, and
// writes atomically with a checksum sidecar.
type FileTaskStore struct {
	filePath string
	tasks    map[string]models.Task
	flk      *flock.Flock
	format   string
}

// NewFileTaskStore creates a new instance of FileTaskStore.
// It does not initialize the store; Initialize must be called separately.
func NewFileTaskStore() *FileTaskStore {
	return &FileTaskStore{
		tasks: make(map[string]models.Task),
	}
}

// Initialize configures the store from the 'dataFile' and 'dataFileFormat'
// keys, creates the file if missing, and loads existing tasks under an
// exclusive lock.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	// Default file name follows the format when no explicit path was given.
	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)

	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	s.tasks = make(map[string]models.Task)
	return s.loadInternal()
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadInternal reads the data file, verifies the checksum sidecar, and
// unmarshals. The caller must hold the lock.
func (s *FileTaskStore) loadInternal() error {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.tasks = make(map[string]models.Task)
			_ = os.Remove(checksumFilePath)
			if f, createErr := os.OpenFile(s.filePath, os.O_CREATE|os.O_RDWR, 0o644); createErr != nil {
				return fmt.Errorf("failed to create data file %s: %w", s.filePath, createErr)
			} else {
				_ = f.Close()
			}
			if err := os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644); err != nil {
				fmt.Printf("Warning: could not write initial checksum file %s: %v\n", checksumFilePath, err)
			}
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedChecksumBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return fmt.Errorf("failed to read checksum file %s: %w - data file might be corrupt or tampered", checksumFilePath, readErr)
		}
		expectedChecksum := strings.TrimSpace(string(expectedChecksumBytes))
		actualChecksum := calculateChecksum(data)

		if actualChecksum != expectedChecksum {
			return fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expectedChecksum, actualChecksum)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}
	// No checksum file with an existing data file means pre-checksum data;
	// load it and let the next save create the sidecar.

	if len(data) == 0 {
		_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644) // best effort
		s.tasks = make(map[string]models.Task)
		return nil
	}

	var taskList models.TaskList
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal TOML from %s: %w", s.filePath, err)
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	s.tasks = make(map[string]models.Task, len(taskList.Tasks))
	for _, task := range taskList.Tasks {
		s.tasks[task.ID] = task
	}
	return nil
}

// saveInternal writes tasks to the data file atomically, then updates the
// checksum sidecar. The caller must hold the lock.
func (s *FileTaskStore) saveInternal() error {
	taskList := models.TaskList{
		Tasks:      make([]models.Task, 0, len(s.tasks)),
		TotalCount: len(s.tasks),
	}
	for _, task := range s.tasks {
		taskList.Tasks = append(taskList.Tasks, task)
	}

	var marshaledData []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaledData, err = json.MarshalIndent(taskList, "", "  ")
	case formatYAML:
		marshaledData, err = yaml.Marshal(taskList)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(taskList); encodeErr == nil {
			marshaledData = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaledData, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}

	actualChecksum := calculateChecksum(marshaledData)
	if err := os.WriteFile(tempChecksumFilePath, []byte(actualChecksum), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("CRITICAL: data file %s updated, but failed to update checksum file %s from %s: %w - store may be inconsistent", s.filePath, checksumFilePath, tempChecksumFilePath, err)
	}

	return nil
}

// generateID creates a new universally unique identifier string.
func generateID() string {
	return uuid.NewString()
}

// validateTimeSpan enforces the timed-task invariant: StartTime and EndTime
// are both present or both absent, and a present span runs forward within a
// single day.
func validateTimeSpan(task models.Task) error {
	if (task.StartTime == "") != (task.EndTime == "") {
		return fmt.Errorf("startTime and endTime must both be set or both be empty")
	}
	if task.StartTime == "" {
		return nil
	}
	start, err := time.Parse("15:04", task.StartTime)
	if err != nil {
		return fmt.Errorf("invalid startTime %q: %w", task.StartTime, err)
	}
	end, err := time.Parse("15:04", task.EndTime)
	if err != nil {
		return fmt.Errorf("invalid endTime %q: %w", task.EndTime, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("startTime %s must be before endTime %s", task.StartTime, task.EndTime)
	}
	return nil
}

// AddTask persists a new task, assigning ID and timestamps.
func (s *FileTaskStore) AddTask(task models.Task) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("could not lock file for add: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	// Reload from disk so concurrent processes see each other's writes.
	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to reload tasks before add: %w", err)
	}

	if task.ID == "" {
		task.ID = generateID()
	} else if _, exists := s.tasks[task.ID]; exists {
		return models.Task{}, fmt.Errorf("task with ID '%s' already exists", task.ID)
	}

	now := time.Now().UnixMilli()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
	if task.Priority == "" {
		task.Priority = models.PriorityNone
	}

	if err := validateTimeSpan(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks[task.ID] = task

	if err := s.saveInternal(); err != nil {
		// Reloading from the unchanged file is the simplest rollback.
		_ = s.loadInternal()
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a task by its unique identifier.
func (s *FileTaskStore) GetTask(id string) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("failed to acquire lock for GetTask: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks for GetTask: %w", err)
	}

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task with ID %s: %w", id, ErrTaskNotFound)
	}
	return task, nil
}

// fieldNameMapping maps JSON field names to struct field names.
var fieldNameMapping = map[string]string{
	"id":          "ID",
	"title":       "Title",
	"category":    "Category",
	"priority":    "Priority",
	"isCompleted": "IsCompleted",
	"dueDate":     "DueDate",
	"startTime":   "StartTime",
	"endTime":     "EndTime",
	"createdAt":   "CreatedAt",
	"updatedAt":   "UpdatedAt",
}

// UpdateTask applies an update map to an existing task and saves.
func (s *FileTaskStore) UpdateTask(id string, updates map[string]interface{}) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("could not lock file for update: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to reload tasks before update: %w", err)
	}

	task, exists := s.tasks[id]
	if !exists {
		return models.Task{}, fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}
	originalTask := task

	task.UpdatedAt = time.Now().UnixMilli()

	for key, value := range updates {
		// DueDate clears with an explicit nil, so it is handled apart from
		// the reflective path.
		if key == "dueDate" {
			if value == nil {
				task.DueDate = nil
				continue
			}
			due, err := coerceDueDate(value)
			if err != nil {
				return models.Task{}, fmt.Errorf("invalid dueDate: %w", err)
			}
			task.DueDate = &due
			continue
		}

		fieldName, ok := fieldNameMapping[key]
		if !ok {
			if len(key) > 0 {
				fieldName = strings.ToUpper(key[:1]) + key[1:]
			}
		}

		field := reflect.ValueOf(&task).Elem().FieldByName(fieldName)
		if field.IsValid() && field.CanSet() {
			val := reflect.ValueOf(value)
			if field.Type() != val.Type() {
				if converted, err := convertType(value, field.Type()); err == nil {
					val = converted
				} else {
					return models.Task{}, fmt.Errorf("type conversion error for field %s: %w", key, err)
				}
			}
			field.Set(val)
		}
	}

	if err := validateTimeSpan(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for updated task: %w", err)
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for updated task: %w", err)
	}

	s.tasks[id] = task

	if err := s.saveInternal(); err != nil {
		s.tasks[id] = originalTask
		return models.Task{}, fmt.Errorf("failed to save updated task: %w", err)
	}

	return task, nil
}

// coerceDueDate accepts a time.Time or an RFC3339/date-only string.
func coerceDueDate(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil *time.Time; use nil to clear")
		}
		return *v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse %q as a date", v)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported dueDate type %T", value)
	}
}

// convertType attempts to convert an interface value to a target reflect.Type.
// This is a simplified converter for the types used in Task.
func convertType(value interface{}, targetType reflect.Type) (reflect.Value, error) {
	valueType := reflect.TypeOf(value)
	if valueType == targetType {
		return reflect.ValueOf(value), nil
	}

	if valueStr, ok := value.(string); ok {
		if targetType == reflect.TypeOf(models.TaskPriority("")) {
			return reflect.ValueOf(models.TaskPriority(valueStr)), nil
		}
	}
	if valueInt, ok := value.(int); ok && targetType.Kind() == reflect.Int64 {
		return reflect.ValueOf(int64(valueInt)), nil
	}

	return reflect.Value{}, fmt.Errorf("unsupported type conversion from %v to %v", valueType, targetType)
}

// DeleteTask removes a task and its subtasks.
func (s *FileTaskStore) DeleteTask(id string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock file for delete: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return fmt.Errorf("failed to reload tasks before delete: %w", err)
	}

	if _, exists := s.tasks[id]; !exists {
		return fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}

	delete(s.tasks, id)

	if err := s.saveInternal(); err != nil {
		_ = s.loadInternal()
		return fmt.Errorf("failed to save after deleting task: %w", err)
	}

	return nil
}

// DeleteAllTasks removes all tasks from the store.
func (s *FileTaskStore) DeleteAllTasks() error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock for DeleteAllTasks: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	s.tasks = make(map[string]models.Task)

	if err := s.saveInternal(); err != nil {
		return fmt.Errorf("failed to clear data file by saving empty task list: %w", err)
	}
	return nil
}

// ToggleComplete flips a task's (or one subtask's) completion state.
// Toggling the parent cascades the new state to every subtask; toggling a
// subtask re-derives the parent from the subtask set, in both directions.
func (s *FileTaskStore) ToggleComplete(id, subtaskID string) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("failed to acquire write lock for ToggleComplete: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks before toggling: %w", err)
	}

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task with ID %s: %w", id, ErrTaskNotFound)
	}
	originalTask := task
	// Copy the subtask slice so the rollback copy is not aliased.
	task.Subtasks = append([]models.Subtask(nil), task.Subtasks...)

	if subtaskID == "" {
		task.IsCompleted = !task.IsCompleted
		for i := range task.Subtasks {
			task.Subtasks[i].IsCompleted = task.IsCompleted
		}
	} else {
		found := false
		for i := range task.Subtasks {
			if task.Subtasks[i].ID == subtaskID {
				task.Subtasks[i].IsCompleted = !task.Subtasks[i].IsCompleted
				found = true
				break
			}
		}
		if !found {
			return models.Task{}, fmt.Errorf("subtask %s of task %s: %w", subtaskID, id, ErrSubtaskNotFound)
		}
		task.RecomputeCompletion()
	}
	task.UpdatedAt = time.Now().UnixMilli()

	s.tasks[id] = task

	if err := s.saveInternal(); err != nil {
		s.tasks[id] = originalTask
		return models.Task{}, fmt.Errorf("failed to save task %s after toggling: %w", id, err)
	}

	return task, nil
}

// AddSubtask appends a new incomplete subtask and re-derives the parent's
// completion (a complete parent gaining an open subtask becomes incomplete).
func (s *FileTaskStore) AddSubtask(taskID, title string) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("failed to acquire write lock for AddSubtask: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks before adding subtask: %w", err)
	}

	task, ok := s.tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("task with ID %s: %w", taskID, ErrTaskNotFound)
	}
	originalTask := task

	subtask := models.Subtask{
		ID:    generateID(),
		Title: title,
	}
	if err := models.ValidateStruct(subtask); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new subtask: %w", err)
	}

	task.Subtasks = append(task.Subtasks, subtask)
	task.RecomputeCompletion()
	task.UpdatedAt = time.Now().UnixMilli()

	s.tasks[taskID] = task

	if err := s.saveInternal(); err != nil {
		s.tasks[taskID] = originalTask
		return models.Task{}, fmt.Errorf("failed to save task %s after adding subtask: %w", taskID, err)
	}

	return task, nil
}

// DeleteSubtask removes a subtask from its parent and re-derives the parent's
// completion from the remaining set.
func (s *FileTaskStore) DeleteSubtask(taskID, subtaskID string) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("failed to acquire write lock for DeleteSubtask: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks before deleting subtask: %w", err)
	}

	task, ok := s.tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("task with ID %s: %w", taskID, ErrTaskNotFound)
	}
	originalTask := task

	kept := make([]models.Subtask, 0, len(task.Subtasks))
	found := false
	for _, sub := range task.Subtasks {
		if sub.ID == subtaskID {
			found = true
			continue
		}
		kept = append(kept, sub)
	}
	if !found {
		return models.Task{}, fmt.Errorf("subtask %s of task %s: %w", subtaskID, taskID, ErrSubtaskNotFound)
	}

	task.Subtasks = kept
	task.RecomputeCompletion()
	task.UpdatedAt = time.Now().UnixMilli()

	s.tasks[taskID] = task

	if err := s.saveInternal(); err != nil {
		s.tasks[taskID] = originalTask
		return models.Task{}, fmt.Errorf("failed to save task %s after deleting subtask: %w", taskID, err)
	}

	return task, nil
}

// ListTasks retrieves the current snapshot, optionally filtered and sorted.
func (s *FileTaskStore) ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for ListTasks: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return nil, fmt.Errorf("failed to load tasks for ListTasks: %w", err)
	}

	if len(s.tasks) == 0 {
		return []models.Task{}, nil
	}

	taskList := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		taskList = append(taskList, task)
	}

	if filterFn != nil {
		filteredTasks := make([]models.Task, 0)
		for _, task := range taskList {
			if filterFn(task) {
				filteredTasks = append(filteredTasks, task)
			}
		}
		taskList = filteredTasks
	}

	if sortFn != nil {
		taskList = sortFn(taskList)
	}

	return taskList, nil
}

// Backup copies the current data file to the destination path.
func (s *FileTaskStore) Backup(destinationPath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for backup: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	input, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read source file %s for backup: %w", s.filePath, err)
	}

	if err = os.WriteFile(destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the current task data with data from the source path. The
// stale checksum sidecar is removed; the next save regenerates it.
func (s *FileTaskStore) Restore(sourcePath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for restore: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}

	tempFilePath := s.filePath + ".tmp_restore"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err = os.WriteFile(tempFilePath, sourceData, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data to temporary file %s: %w", tempFilePath, err)
	}

	if err = os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to atomically replace file %s with restored data from %s: %w", s.filePath, sourcePath, err)
	}

	_ = os.Remove(s.filePath + checksumSuffix) // best effort

	return s.loadInternal()
}

// Close releases the file lock. flock.Unlock is idempotent.
func (s *FileTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
