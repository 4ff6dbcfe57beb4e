package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dayflowhq/dayflow/models"
)

func habitWith(days ...time.Time) models.Habit {
	h := models.Habit{ID: "h1", Title: "Stretch", Completions: map[string]bool{}}
	for _, d := range days {
		h.Completions[d.Format(HabitDateFormat)] = true
	}
	return h
}

func TestHabitStreak(t *testing.T) {
	today := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	h := habitWith(today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))
	assert.Equal(t, 3, HabitStreak(h, today))

	// Not done today: the run ending yesterday still counts.
	h = habitWith(today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))
	assert.Equal(t, 2, HabitStreak(h, today))

	// A gap breaks the streak.
	h = habitWith(today, today.AddDate(0, 0, -2))
	assert.Equal(t, 1, HabitStreak(h, today))

	h = habitWith()
	assert.Equal(t, 0, HabitStreak(h, today))
}

func TestHabitWeek(t *testing.T) {
	// Wednesday 2026-03-11.
	wed := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local)
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	h := habitWith(mon, wed)
	week := HabitWeek(h, wed)

	assert.Equal(t, []bool{true, false, true, false, false, false, false}, week)
}
