// Package pomodoro implements the focus timer's session cycle as a pure
// state machine. The terminal UI drives it; nothing here touches the clock.
package pomodoro

import (
	"time"

	"github.com/dayflowhq/dayflow/types"
)

// Phase identifies the current timer phase.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

// Default durations, in minutes.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultSessionsPerCycle  = 4
)

// Timer tracks the session cycle: work sessions alternate with breaks, and
// every SessionsPerCycle-th completed work session earns the long break.
type Timer struct {
	Phase Phase
	// CompletedSessions counts finished work sessions since the timer started.
	CompletedSessions int

	workDuration     time.Duration
	shortBreak       time.Duration
	longBreak        time.Duration
	sessionsPerCycle int
}

// NewTimer builds a timer from configuration, falling back to the defaults
// for any unset value.
func NewTimer(cfg types.PomodoroConfig) *Timer {
	t := &Timer{
		Phase:            PhaseWork,
		workDuration:     time.Duration(DefaultWorkMinutes) * time.Minute,
		shortBreak:       time.Duration(DefaultShortBreakMinutes) * time.Minute,
		longBreak:        time.Duration(DefaultLongBreakMinutes) * time.Minute,
		sessionsPerCycle: DefaultSessionsPerCycle,
	}
	if cfg.WorkMinutes > 0 {
		t.workDuration = time.Duration(cfg.WorkMinutes) * time.Minute
	}
	if cfg.ShortBreakMinutes > 0 {
		t.shortBreak = time.Duration(cfg.ShortBreakMinutes) * time.Minute
	}
	if cfg.LongBreakMinutes > 0 {
		t.longBreak = time.Duration(cfg.LongBreakMinutes) * time.Minute
	}
	if cfg.SessionsPerCycle > 0 {
		t.sessionsPerCycle = cfg.SessionsPerCycle
	}
	return t
}

// PhaseDuration returns the full duration of the current phase.
func (t *Timer) PhaseDuration() time.Duration {
	switch t.Phase {
	case PhaseShortBreak:
		return t.shortBreak
	case PhaseLongBreak:
		return t.longBreak
	default:
		return t.workDuration
	}
}

// Advance moves to the next phase after the current one completes and
// returns the new phase. Completing a work session increments the session
// count; the break that follows is long on every sessionsPerCycle-th
// session and short otherwise. Completing any break returns to work.
func (t *Timer) Advance() Phase {
	if t.Phase == PhaseWork {
		t.CompletedSessions++
		if t.CompletedSessions%t.sessionsPerCycle == 0 {
			t.Phase = PhaseLongBreak
		} else {
			t.Phase = PhaseShortBreak
		}
	} else {
		t.Phase = PhaseWork
	}
	return t.Phase
}

// Skip abandons the current phase and moves on. Skipping a work session does
// not count it as completed; the break that follows is always short.
func (t *Timer) Skip() Phase {
	if t.Phase == PhaseWork {
		t.Phase = PhaseShortBreak
	} else {
		t.Phase = PhaseWork
	}
	return t.Phase
}

// Reset returns the timer to the start of a fresh cycle.
func (t *Timer) Reset() {
	t.Phase = PhaseWork
	t.CompletedSessions = 0
}

// PhaseLabel is the human-readable name of a phase.
func PhaseLabel(p Phase) string {
	switch p {
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}
