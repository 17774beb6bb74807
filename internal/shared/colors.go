// Package shared provides shared utilities for all hook commands.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard color definitions.
var (
	Red    = lipgloss.Color("#f38ba8")
	Green  = lipgloss.Color("#a6e3a1")
	Yellow = lipgloss.Color("#f9e2af")
	Blue   = lipgloss.Color("#89dceb")
	Cyan   = lipgloss.Color("#94e2d5")
	Mauve  = lipgloss.Color("#cba6f7")
)

// Styles for common output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	WarningStyle = lipgloss.NewStyle().Foreground(Yellow)
	InfoStyle    = lipgloss.NewStyle().Foreground(Blue)
	DebugStyle   = lipgloss.NewStyle().Foreground(Cyan)
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Mauve)
)

// DisableColors replaces all styles with plain passthrough styles. Used when
// color output is turned off in configuration.
func DisableColors() {
	plain := lipgloss.NewStyle()
	ErrorStyle = plain
	SuccessStyle = plain
	WarningStyle = plain
	InfoStyle = plain
	DebugStyle = plain
	TitleStyle = lipgloss.NewStyle().Bold(true)
}
