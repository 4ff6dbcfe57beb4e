package planner

import (
	"time"

	"github.com/dayflowhq/dayflow/models"
)

// HabitDateFormat is the calendar-date key used in habit completion maps.
const HabitDateFormat = "2006-01-02"

// HabitDoneOn reports whether the habit was completed on the given day.
func HabitDoneOn(h models.Habit, day time.Time) bool {
	return h.Completions[day.Format(HabitDateFormat)]
}

// HabitStreak counts consecutive completed days ending at ref. A habit not yet
// done today still counts a streak ending yesterday, so checking in late does
// not zero an unbroken run.
func HabitStreak(h models.Habit, ref time.Time) int {
	day := ref
	if !HabitDoneOn(h, day) {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for HabitDoneOn(h, day) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// HabitWeek returns the completion states for the seven days of ref's week,
// aligned with WeekOf.
func HabitWeek(h models.Habit, ref time.Time) []bool {
	days := WeekOf(ref)
	week := make([]bool, len(days))
	for i, day := range days {
		week[i] = HabitDoneOn(h, day)
	}
	return week
}
