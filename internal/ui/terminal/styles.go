package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"workplay/internal/core/timekeeper"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8BE42"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C7086")).
			Padding(0, 2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F849C"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))

	phaseStyles = map[timekeeper.Phase]lipgloss.Style{
		timekeeper.PhaseWorking: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D64541")),
		timekeeper.PhasePlaying: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#43A047")),
		timekeeper.PhaseIdle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9E9E9E")),
	}
)
