package main

import "github.com/charmbracelet/lipgloss"

// Output styles. lipgloss drops the colors when stdout is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	activeStyle  = lipgloss.NewStyle().Bold(true)
)
