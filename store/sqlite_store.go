package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dayflowhq/dayflow/models"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0,
		due_date TEXT,                        -- RFC3339 or NULL
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,          -- milliseconds since epoch
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subtasks (
		id TEXT PRIMARY KEY,
		task_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
	CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id, position);
`

// SQLiteTaskStore implements TaskStore on an embedded SQLite database. It is
// the document-store backend: same interface and semantics as the file store,
// selected with data.format=sqlite.
type SQLiteTaskStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteTaskStore creates a new instance; Initialize must be called before use.
func NewSQLiteTaskStore() *SQLiteTaskStore {
	return &SQLiteTaskStore{}
}

// Initialize opens (creating if needed) the database at the 'dataFile' path
// and applies the schema.
func (s *SQLiteTaskStore) Initialize(config map[string]string) error {
	path := config[dataFileKey]
	if path == "" {
		path = "tasks.db"
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	s.db = db
	s.dbPath = path
	return nil
}

// nullDueDate maps a *time.Time to a nullable RFC3339 column value.
func nullDueDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

type sqlExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertTaskTx writes a task row and its subtask rows.
func insertTaskTx(tx sqlExecutor, t models.Task) error {
	_, err := tx.Exec(`
		INSERT INTO tasks (id, title, category, priority, is_completed, due_date, start_time, end_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Category, string(t.Priority), t.IsCompleted, nullDueDate(t.DueDate), t.StartTime, t.EndTime, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	for i, sub := range t.Subtasks {
		if _, err := tx.Exec(`INSERT INTO subtasks (id, task_id, position, title, is_completed) VALUES (?, ?, ?, ?, ?)`,
			sub.ID, t.ID, i, sub.Title, sub.IsCompleted); err != nil {
			return fmt.Errorf("insert subtask %s: %w", sub.ID, err)
		}
	}
	return nil
}

// replaceTask rewrites a task and its subtasks atomically.
func (s *SQLiteTaskStore) replaceTask(t models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, t.ID); err != nil {
		return fmt.Errorf("delete task %s for replace: %w", t.ID, err)
	}
	if err := insertTaskTx(tx, t); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteTaskStore) scanTasks(where string, args ...any) ([]models.Task, error) {
	query := `SELECT id, title, category, priority, is_completed, due_date, start_time, end_time, created_at, updated_at FROM tasks ` + where
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var due sql.NullString
		var priority string
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &priority, &t.IsCompleted, &due, &t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Priority = models.TaskPriority(priority)
		if due.Valid {
			parsed, err := time.Parse(time.RFC3339, due.String)
			if err != nil {
				return nil, fmt.Errorf("parse due_date %q: %w", due.String, err)
			}
			t.DueDate = &parsed
		}
		t.Subtasks = []models.Subtask{}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	for i := range tasks {
		subs, err := s.scanSubtasks(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Subtasks = subs
	}
	return tasks, nil
}

func (s *SQLiteTaskStore) scanSubtasks(taskID string) ([]models.Subtask, error) {
	rows, err := s.db.Query(`SELECT id, title, is_completed FROM subtasks WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("query subtasks of %s: %w", taskID, err)
	}
	defer func() { _ = rows.Close() }()

	subs := []models.Subtask{}
	for rows.Next() {
		var sub models.Subtask
		if err := rows.Scan(&sub.ID, &sub.Title, &sub.IsCompleted); err != nil {
			return nil, fmt.Errorf("scan subtask: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// AddTask persists a new task, assigning ID and timestamps.
func (s *SQLiteTaskStore) AddTask(task models.Task) (models.Task, error) {
	if task.ID == "" {
		task.ID = generateID()
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

	tx, err := s.db.Begin()
	if err != nil {
		return models.Task{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertTaskTx(tx, task); err != nil {
		return models.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Task{}, fmt.Errorf("commit add: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by its unique identifier.
func (s *SQLiteTaskStore) GetTask(id string) (models.Task, error) {
	tasks, err := s.scanTasks(`WHERE id = ?`, id)
	if err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, fmt.Errorf("task with ID %s: %w", id, ErrTaskNotFound)
	}
	return tasks[0], nil
}

// UpdateTask applies an update map to an existing task. The same field-name
// mapping and coercion rules as the file store apply.
func (s *SQLiteTaskStore) UpdateTask(id string, updates map[string]interface{}) (models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}

	task.UpdatedAt = time.Now().UnixMilli()

	for key, value := range updates {
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
		if !ok && len(key) > 0 {
			fieldName = strings.ToUpper(key[:1]) + key[1:]
		}
		field := reflect.ValueOf(&task).Elem().FieldByName(fieldName)
		if field.IsValid() && field.CanSet() {
			val := reflect.ValueOf(value)
			if field.Type() != val.Type() {
				if converted, convErr := convertType(value, field.Type()); convErr == nil {
					val = converted
				} else {
					return models.Task{}, fmt.Errorf("type conversion error for field %s: %w", key, convErr)
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

	if err := s.replaceTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to save updated task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task; subtasks go with it via ON DELETE CASCADE.
func (s *SQLiteTaskStore) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}
	return nil
}

// DeleteAllTasks removes every task and subtask.
func (s *SQLiteTaskStore) DeleteAllTasks() error {
	if _, err := s.db.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("delete all tasks: %w", err)
	}
	return nil
}

// ToggleComplete flips a task's (or one subtask's) completion state with the
// same cascade and recompute semantics as the file store.
func (s *SQLiteTaskStore) ToggleComplete(id, subtaskID string) (models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}

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

	if err := s.replaceTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to save task %s after toggling: %w", id, err)
	}
	return task, nil
}

// AddSubtask appends a new incomplete subtask.
func (s *SQLiteTaskStore) AddSubtask(taskID, title string) (models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	subtask := models.Subtask{ID: generateID(), Title: title}
	if err := models.ValidateStruct(subtask); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new subtask: %w", err)
	}

	task.Subtasks = append(task.Subtasks, subtask)
	task.RecomputeCompletion()
	task.UpdatedAt = time.Now().UnixMilli()

	if err := s.replaceTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to save task %s after adding subtask: %w", taskID, err)
	}
	return task, nil
}

// DeleteSubtask removes a subtask from its parent.
func (s *SQLiteTaskStore) DeleteSubtask(taskID, subtaskID string) (models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

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

	if err := s.replaceTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to save task %s after deleting subtask: %w", taskID, err)
	}
	return task, nil
}

// ListTasks retrieves the current snapshot, optionally filtered and sorted.
func (s *SQLiteTaskStore) ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error) {
	tasks, err := s.scanTasks(`ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	if filterFn != nil {
		filtered := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if filterFn(t) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	if sortFn != nil {
		tasks = sortFn(tasks)
	}
	return tasks, nil
}

// Backup copies the database file to the destination path.
func (s *SQLiteTaskStore) Backup(destinationPath string) error {
	if _, err := s.db.Exec(`VACUUM INTO ?`, destinationPath); err != nil {
		return fmt.Errorf("failed to back up database to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the database with the backup at sourcePath and reopens it.
func (s *SQLiteTaskStore) Restore(sourcePath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}
	if err := os.WriteFile(s.dbPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write restored database %s: %w", s.dbPath, err)
	}
	return s.Initialize(map[string]string{dataFileKey: s.dbPath})
}

// Close releases the database handle.
func (s *SQLiteTaskStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
