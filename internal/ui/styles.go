package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dayflowhq/dayflow/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan
	ColorBlue      = lipgloss.Color("75")  // Blue

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	// Completed tasks render dim and struck through.
	StyleDone = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)
)

// categoryColors maps the default categories to stable accent colors.
// Unknown categories fall back to the text color.
var categoryColors = map[string]lipgloss.Color{
	"Work":     ColorBlue,
	"Personal": ColorPrimary,
	"Errands":  ColorWarning,
	"Health":   ColorSuccess,
	"Social":   ColorCyan,
	"Finance":  lipgloss.Color("178"), // Gold
	"Home":     lipgloss.Color("137"), // Brown
	"Learn":    lipgloss.Color("135"), // Purple
}

// CategoryStyle returns the accent style for a category.
func CategoryStyle(category string) lipgloss.Style {
	if color, ok := categoryColors[category]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return StyleText
}

// PriorityStyle returns the accent style for a priority level.
func PriorityStyle(p models.TaskPriority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return StyleError
	case models.PriorityMedium:
		return StyleWarning
	case models.PriorityLow:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	default:
		return StyleSubtle
	}
}

// CheckboxIcon renders the completion marker for tasks and subtasks.
func CheckboxIcon(done bool) string {
	if done {
		return StyleSuccess.Render("[✓]")
	}
	return StyleSubtle.Render("[ ]")
}
