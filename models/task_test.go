package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidateStruct_Task(t *testing.T) {
	task := NewTask(uuid.NewString(), "Water the plants", "Home")
	if err := ValidateStruct(*task); err != nil {
		t.Fatalf("valid task failed validation: %v", err)
	}

	task.Title = ""
	if err := ValidateStruct(*task); err == nil {
		t.Error("expected validation error for empty title")
	}

	task.Title = "Water the plants"
	task.Priority = "urgent"
	if err := ValidateStruct(*task); err == nil {
		t.Error("expected validation error for unknown priority")
	}
}

func TestValidateStruct_ClockTime(t *testing.T) {
	task := NewTask(uuid.NewString(), "Standup", "Work")
	task.Priority = PriorityMedium

	task.StartTime = "09:00"
	task.EndTime = "09:30"
	if err := ValidateStruct(*task); err != nil {
		t.Errorf("valid clock times rejected: %v", err)
	}

	task.EndTime = "25:00"
	if err := ValidateStruct(*task); err == nil {
		t.Error("expected validation error for out-of-range clock time")
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Error("high must rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("medium must rank before low")
	}
	if PriorityLow.Rank() >= PriorityNone.Rank() {
		t.Error("low must rank before none")
	}
	if TaskPriority("bogus").Rank() <= PriorityNone.Rank() {
		t.Error("unknown priority must rank last")
	}
}

func TestRecomputeCompletion(t *testing.T) {
	task := NewTask(uuid.NewString(), "Pack for trip", "Personal")
	task.Subtasks = []Subtask{
		{ID: uuid.NewString(), Title: "Clothes", IsCompleted: true},
		{ID: uuid.NewString(), Title: "Passport", IsCompleted: false},
	}

	task.RecomputeCompletion()
	if task.IsCompleted {
		t.Error("parent must stay incomplete while a subtask is incomplete")
	}

	task.Subtasks[1].IsCompleted = true
	task.RecomputeCompletion()
	if !task.IsCompleted {
		t.Error("parent must complete when all subtasks complete")
	}

	// Symmetric rule: unchecking a subtask reverts the parent.
	task.Subtasks[0].IsCompleted = false
	task.RecomputeCompletion()
	if task.IsCompleted {
		t.Error("parent must revert to incomplete when a subtask is unchecked")
	}
}

func TestRecomputeCompletion_NoSubtasks(t *testing.T) {
	task := NewTask(uuid.NewString(), "Call dentist", "Health")
	task.IsCompleted = true
	task.RecomputeCompletion()
	if !task.IsCompleted {
		t.Error("task without subtasks must keep its stored completion state")
	}
}

func TestIsTimed(t *testing.T) {
	task := NewTask(uuid.NewString(), "Gym", "Health")
	if task.IsTimed() {
		t.Error("task without times must be all-day")
	}
	task.StartTime = "18:00"
	if task.IsTimed() {
		t.Error("task with only a start time must be all-day")
	}
	task.EndTime = "19:00"
	if !task.IsTimed() {
		t.Error("task with both times must be timed")
	}
}
