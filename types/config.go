/*
Copyright © 2025 Dayflow Authors
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	Config   string         `mapstructure:"config"`
	Project  ProjectConfig  `mapstructure:"project" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Calendar CalendarConfig `mapstructure:"calendar" validate:"required"`
	Pomodoro PomodoroConfig `mapstructure:"pomodoro" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"omitempty"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File      string `mapstructure:"file" validate:"required"`
	Format    string `mapstructure:"format" validate:"required,oneof=json yaml toml sqlite"`
	HabitFile string `mapstructure:"habitFile" validate:"required"`
}

// CalendarConfig holds the day-grid geometry used by the calendar views.
// Offsets are computed from DayStartHour in units of one hour split into
// UnitsPerHour rows.
type CalendarConfig struct {
	DayStartHour int `mapstructure:"dayStartHour" validate:"min=0,max=23"`
	DayEndHour   int `mapstructure:"dayEndHour" validate:"min=1,max=24,gtfield=DayStartHour"`
	UnitsPerHour int `mapstructure:"unitsPerHour" validate:"min=1,max=60"`
}

// PomodoroConfig holds the focus timer durations, in minutes.
type PomodoroConfig struct {
	WorkMinutes       int `mapstructure:"workMinutes" validate:"min=1,max=180"`
	ShortBreakMinutes int `mapstructure:"shortBreakMinutes" validate:"min=1,max=60"`
	LongBreakMinutes  int `mapstructure:"longBreakMinutes" validate:"min=1,max=120"`
	// SessionsPerCycle is how many work sessions precede a long break.
	SessionsPerCycle int `mapstructure:"sessionsPerCycle" validate:"min=1,max=12"`
}

// LLMConfig holds configuration for the task suggestion provider
type LLMConfig struct {
	Provider        string  `mapstructure:"provider" validate:"omitempty,oneof=openai ollama claude gemini"`
	ModelName       string  `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey          string  `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL         string  `mapstructure:"baseUrl" validate:"omitempty,url"`
	MaxOutputTokens int     `mapstructure:"maxOutputTokens" validate:"omitempty,min=1"`
	Temperature     float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	// RequestTimeoutSeconds controls the HTTP client timeout for LLM calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// Debug enables extra request/response logging within the LLM provider (generally tied to --verbose)
	Debug bool `mapstructure:"debug"`
}
