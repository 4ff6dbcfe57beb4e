package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityNone   TaskPriority = "none"
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// priorityRanks orders priorities for display: high sorts before medium,
// medium before low, low before none.
var priorityRanks = map[TaskPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
	PriorityNone:   3,
}

// Rank returns the sort rank of a priority. Unknown values rank last.
func (p TaskPriority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return len(priorityRanks)
}

// DefaultCategories is the built-in category set. The configured set may
// override it, but every screen and the suggester fall back to these.
var DefaultCategories = []string{
	"Work", "Personal", "Errands", "Health", "Social", "Finance", "Home", "Learn",
}

// Subtask is a child checklist item owned by exactly one Task. It has no
// independent lifecycle; it is created and deleted only through parent-task
// operations.
type Subtask struct {
	ID          string `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Title       string `json:"title" yaml:"title" toml:"title" validate:"required,min=1,max=255"`
	IsCompleted bool   `json:"isCompleted" yaml:"isCompleted" toml:"isCompleted"`
}

// Task is a user-created to-do item with scheduling and completion metadata.
//
// DueDate carries date-only semantics: the time-of-day portion is ignored for
// day bucketing, and it serializes as an ISO-8601 date-time or null. StartTime
// and EndTime are "HH:MM" 24-hour clock strings; a task is "timed" only when
// both are set, and a timed span never crosses midnight. CreatedAt and
// UpdatedAt are integer milliseconds since epoch; CreatedAt is the stable sort
// tie-break (newer first).
type Task struct {
	ID          string       `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Title       string       `json:"title" yaml:"title" toml:"title" validate:"required,min=1,max=255"`
	Category    string       `json:"category" yaml:"category" toml:"category" validate:"required,min=1"`
	Priority    TaskPriority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=none low medium high"`
	IsCompleted bool         `json:"isCompleted" yaml:"isCompleted" toml:"isCompleted"`
	DueDate     *time.Time   `json:"dueDate" yaml:"dueDate" toml:"dueDate,omitempty"`
	StartTime   string       `json:"startTime,omitempty" yaml:"startTime,omitempty" toml:"startTime,omitempty" validate:"omitempty,clocktime"`
	EndTime     string       `json:"endTime,omitempty" yaml:"endTime,omitempty" toml:"endTime,omitempty" validate:"omitempty,clocktime"`
	CreatedAt   int64        `json:"createdAt" yaml:"createdAt" toml:"createdAt" validate:"required"`
	UpdatedAt   int64        `json:"updatedAt" yaml:"updatedAt" toml:"updatedAt" validate:"required"`
	Subtasks    []Subtask    `json:"subtasks" yaml:"subtasks" toml:"subtasks" validate:"dive"`
}

// CreatedTime returns CreatedAt as a time.Time.
func (t Task) CreatedTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// IsTimed reports whether the task has a full clock-time span and therefore
// renders on the hourly timeline rather than the all-day lane.
func (t Task) IsTimed() bool {
	return t.StartTime != "" && t.EndTime != ""
}

// RecomputeCompletion derives IsCompleted from the subtask set: a task with
// subtasks is complete iff every subtask is complete. Tasks without subtasks
// keep their stored value. The rule is applied symmetrically, so unchecking a
// subtask of a complete parent reverts the parent to incomplete.
func (t *Task) RecomputeCompletion() {
	if len(t.Subtasks) == 0 {
		return
	}
	for _, s := range t.Subtasks {
		if !s.IsCompleted {
			t.IsCompleted = false
			return
		}
	}
	t.IsCompleted = true
}

// TaskList is the persisted collection shape for file-backed stores.
type TaskList struct {
	Tasks      []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
	TotalCount int    `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
}

// Habit is a recurring daily practice tracked by completion date.
// Completions is keyed by calendar date in "2006-01-02" form; a present key
// means the habit was done that day.
type Habit struct {
	ID          string          `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Title       string          `json:"title" yaml:"title" toml:"title" validate:"required,min=1,max=255"`
	Completions map[string]bool `json:"completions" yaml:"completions" toml:"completions"`
}

// HabitList is the persisted collection shape for the habit store.
type HabitList struct {
	Habits []Habit `json:"habits" yaml:"habits" toml:"habits" validate:"dive"`
}

// SuggestedTask is a draft proposed by the suggestion service. The caller may
// pass it to the store unchanged; ID, timestamps and completion state are
// assigned at creation.
type SuggestedTask struct {
	Title    string `json:"title" validate:"required,min=1"`
	Category string `json:"category" validate:"required,min=1"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("clocktime", validateClockTime)
}

// validateClockTime checks for a 24-hour "HH:MM" clock string.
func validateClockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
		_ = validate.RegisterValidation("clocktime", validateClockTime)
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask creates a task with defaults filled in. The store assigns the final
// timestamps on creation; this helper exists for tests and drafts.
func NewTask(id, title, category string) *Task {
	now := time.Now().UnixMilli()
	return &Task{
		ID:        id,
		Title:     title,
		Category:  category,
		Priority:  PriorityNone,
		CreatedAt: now,
		UpdatedAt: now,
		Subtasks:  []Subtask{},
	}
}
