package types

import (
	"testing"
)

func TestAppConfig_Structure(t *testing.T) {
	config := AppConfig{
		Project: ProjectConfig{
			RootDir: "/home/user/.dayflow",
		},
		Data: DataConfig{
			File:      "tasks.json",
			Format:    "json",
			HabitFile: "habits.json",
		},
		Calendar: CalendarConfig{
			DayStartHour: 7,
			DayEndHour:   24,
			UnitsPerHour: 5,
		},
		Pomodoro: PomodoroConfig{
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			SessionsPerCycle:  4,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			ModelName:   "gpt-4o-mini",
			Temperature: 0.7,
		},
	}

	// Test basic structure
	if config.Project.RootDir != "/home/user/.dayflow" {
		t.Errorf("Project.RootDir mismatch: got %q, want %q", config.Project.RootDir, "/home/user/.dayflow")
	}
	if config.Data.Format != "json" {
		t.Errorf("Data.Format mismatch: got %q, want %q", config.Data.Format, "json")
	}
	if config.Calendar.DayStartHour != 7 || config.Calendar.UnitsPerHour != 5 {
		t.Errorf("Calendar defaults mismatch: %+v", config.Calendar)
	}
	if config.Pomodoro.SessionsPerCycle != 4 {
		t.Errorf("Pomodoro.SessionsPerCycle mismatch: got %d, want 4", config.Pomodoro.SessionsPerCycle)
	}
	if config.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider mismatch: got %q, want %q", config.LLM.Provider, "openai")
	}
}
