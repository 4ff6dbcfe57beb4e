package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dayflowhq/dayflow/models"
	"github.com/dayflowhq/dayflow/planner"
)

// logVerbose writes to stderr only when --verbose is set.
func logVerbose(format string, args ...interface{}) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// parsePriority normalizes a priority flag value. An empty value means none.
func parsePriority(value string) (models.TaskPriority, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return models.PriorityNone, nil
	case string(models.PriorityHigh):
		return models.PriorityHigh, nil
	case string(models.PriorityMedium):
		return models.PriorityMedium, nil
	case string(models.PriorityLow):
		return models.PriorityLow, nil
	case string(models.PriorityNone):
		return models.PriorityNone, nil
	default:
		return "", fmt.Errorf("invalid priority %q (use high, medium, low, or none)", value)
	}
}

// parseDate accepts "today", "tomorrow", or a YYYY-MM-DD date.
func parseDate(value string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return time.Now(), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD, today, or tomorrow)", value)
	}
	return t, nil
}

// tasksDueOn returns every task due on day's calendar date, completed or not.
// FilterDueToday feeds the actionable list; progress and breakdown aggregates
// need the whole day, otherwise completed work never counts.
func tasksDueOn(tasks []models.Task, day time.Time) []models.Task {
	return planner.BucketByDay(tasks, planner.DayRange(day, 1))[0]
}

// confirmAction asks a yes/no question on stdin unless skip is set.
func confirmAction(question string, skip bool) bool {
	if skip {
		return true
	}
	fmt.Printf("%s [y/N]: ", question)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
