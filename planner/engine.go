// Package planner derives every read-only view the UI needs from a task
// snapshot: display ordering, Today filtering, calendar day buckets, hourly
// timeline offsets, and progress aggregates. All functions are pure; they
// never mutate their input and never perform I/O.
package planner

import (
	"sort"
	"time"

	"github.com/dayflowhq/dayflow/models"
)

// Offset places a timed task on an hourly grid. Top and Height are expressed
// in the caller's display unit (rem, rows, pixels) via the unitsPerHour scale.
type Offset struct {
	Top    float64
	Height float64
}

// Progress summarizes completion across a task list.
type Progress struct {
	CompletedCount int
	TotalCount     int
	Percent        float64
}

// CategoryCount is one bar of the category breakdown chart.
type CategoryCount struct {
	Category  string
	Completed int
	Pending   int
}

// SuggestionContext is the engine's hand-off to the suggestion service:
// categories still in play today, plus every known title for similarity.
type SuggestionContext struct {
	IncompleteCategories []string
	AllTitles            []string
}

// SortForDisplay returns a new slice ordered for list screens: incomplete
// tasks before complete ones, then by priority rank (high, medium, low, none),
// then most recently created first. The CreatedAt tie-break makes the order
// deterministic without relying on a stable sort.
func SortForDisplay(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		return a.CreatedAt > b.CreatedAt
	})
	return sorted
}

// SameDay reports whether two instants fall on the same calendar date in a's
// location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FilterDueToday returns the incomplete tasks due on ref's calendar date.
// Undated tasks are excluded, as are completed tasks even when due today.
func FilterDueToday(tasks []models.Task, ref time.Time) []models.Task {
	today := make([]models.Task, 0)
	for _, t := range tasks {
		if t.IsCompleted || t.DueDate == nil {
			continue
		}
		if SameDay(ref, *t.DueDate) {
			today = append(today, t)
		}
	}
	return today
}

// BucketByDay groups tasks by the calendar date of their due date, one bucket
// per entry of days, in the order given. A task with no due date lands in no
// bucket. The same function serves the 1-day, 3-day, week and month grids;
// only the days input differs.
func BucketByDay(tasks []models.Task, days []time.Time) [][]models.Task {
	buckets := make([][]models.Task, len(days))
	for i, day := range days {
		bucket := make([]models.Task, 0)
		for _, t := range tasks {
			if t.DueDate != nil && SameDay(day, *t.DueDate) {
				bucket = append(bucket, t)
			}
		}
		buckets[i] = bucket
	}
	return buckets
}

// DayRange returns n consecutive calendar days starting at start's date.
func DayRange(start time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for i := 0; i < n; i++ {
		days = append(days, base.AddDate(0, 0, i))
	}
	return days
}

// WeekOf returns the seven days of ref's week, starting Monday.
func WeekOf(ref time.Time) []time.Time {
	offset := (int(ref.Weekday()) + 6) % 7
	return DayRange(ref.AddDate(0, 0, -offset), 7)
}

// MonthOf returns every day of ref's calendar month.
func MonthOf(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return DayRange(first, first.AddDate(0, 1, -1).Day())
}

// PartitionAllDayVsTimed splits tasks into the all-day lane and the timeline
// lane. The partition is total and disjoint: every task appears in exactly one
// of the two outputs.
func PartitionAllDayVsTimed(tasks []models.Task) (allDay, timed []models.Task) {
	allDay = make([]models.Task, 0)
	timed = make([]models.Task, 0)
	for _, t := range tasks {
		if t.IsTimed() {
			timed = append(timed, t)
		} else {
			allDay = append(allDay, t)
		}
	}
	return allDay, timed
}

// timeToMinutes converts an "HH:MM" clock string to minutes since midnight.
// Malformed input yields 0; validation happens at the form layer.
func timeToMinutes(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// TimelineOffset converts a timed task's span into a vertical offset on a grid
// whose first displayed hour is dayStartHour and whose hour rows are
// unitsPerHour tall. An untimed task yields the zero Offset as a defensive
// default. A task starting before dayStartHour yields a negative Top; callers
// decide how to render spans outside the grid.
func TimelineOffset(task models.Task, dayStartHour int, unitsPerHour float64) Offset {
	if !task.IsTimed() {
		return Offset{}
	}
	start := timeToMinutes(task.StartTime) - dayStartHour*60
	end := timeToMinutes(task.EndTime) - dayStartHour*60
	return Offset{
		Top:    float64(start) / 60 * unitsPerHour,
		Height: float64(end-start) / 60 * unitsPerHour,
	}
}

// ComputeProgress counts completed tasks. Subtask completion is not counted
// separately; a parent's IsCompleted already reflects its subtasks.
func ComputeProgress(tasks []models.Task) Progress {
	p := Progress{TotalCount: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted {
			p.CompletedCount++
		}
	}
	if p.TotalCount > 0 {
		p.Percent = float64(p.CompletedCount) / float64(p.TotalCount) * 100
	}
	return p
}

// CategoryBreakdown groups tasks by category and counts completed vs pending
// per group. Group order is the first-occurrence order in the task list; the
// breakdown renders as a bar chart, so the order is part of the contract.
func CategoryBreakdown(tasks []models.Task) []CategoryCount {
	index := make(map[string]int)
	breakdown := make([]CategoryCount, 0)
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(breakdown)
			index[t.Category] = i
			breakdown = append(breakdown, CategoryCount{Category: t.Category})
		}
		if t.IsCompleted {
			breakdown[i].Completed++
		} else {
			breakdown[i].Pending++
		}
	}
	return breakdown
}

// DeriveSuggestionContext collects the deduplicated categories of incomplete
// tasks and every task title in list order. The engine only assembles the
// context; calling the suggestion service is the caller's business.
func DeriveSuggestionContext(tasks []models.Task) SuggestionContext {
	seen := make(map[string]bool)
	ctx := SuggestionContext{
		IncompleteCategories: make([]string, 0),
		AllTitles:            make([]string, 0, len(tasks)),
	}
	for _, t := range tasks {
		ctx.AllTitles = append(ctx.AllTitles, t.Title)
		if !t.IsCompleted && !seen[t.Category] {
			seen[t.Category] = true
			ctx.IncompleteCategories = append(ctx.IncompleteCategories, t.Category)
		}
	}
	return ctx
}
