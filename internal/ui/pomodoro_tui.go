package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dayflowhq/dayflow/internal/pomodoro"
)

// RunPomodoro starts the focus timer TUI and blocks until the user quits.
func RunPomodoro(timer *pomodoro.Timer) error {
	m := pomodoroModel{
		timer:     timer,
		remaining: timer.PhaseDuration(),
		running:   true,
		bar:       progress.New(progress.WithDefaultGradient()),
	}

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running pomodoro timer: %w", err)
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pomodoroModel is the Bubble Tea model for the focus timer.
type pomodoroModel struct {
	timer     *pomodoro.Timer
	remaining time.Duration
	running   bool
	bar       progress.Model
}

func (m pomodoroModel) Init() tea.Cmd {
	return tick()
}

func (m pomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "p":
			m.running = !m.running
		case "s":
			m.timer.Skip()
			m.remaining = m.timer.PhaseDuration()
		case "r":
			m.timer.Reset()
			m.remaining = m.timer.PhaseDuration()
		}
		return m, nil

	case tickMsg:
		if m.running {
			m.remaining -= time.Second
			if m.remaining <= 0 {
				m.timer.Advance()
				m.remaining = m.timer.PhaseDuration()
			}
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil
	}

	return m, nil
}

func (m pomodoroModel) View() string {
	total := m.timer.PhaseDuration()
	elapsed := total - m.remaining
	ratio := 0.0
	if total > 0 {
		ratio = float64(elapsed) / float64(total)
	}

	state := ""
	if !m.running {
		state = StyleWarning.Render(" (paused)")
	}

	minutes := int(m.remaining.Minutes())
	seconds := int(m.remaining.Seconds()) % 60

	return fmt.Sprintf("\n  %s%s\n\n  %s  %s\n\n  %s\n\n  %s\n",
		StyleSectionTitle.Render(pomodoro.PhaseLabel(m.timer.Phase)),
		state,
		StyleTitle.Render(fmt.Sprintf("%02d:%02d", minutes, seconds)),
		m.bar.ViewAs(ratio),
		StyleSubtle.Render(fmt.Sprintf("completed sessions: %d", m.timer.CompletedSessions)),
		StyleSubtle.Render("space pause · s skip · r reset · q quit"),
	)
}
