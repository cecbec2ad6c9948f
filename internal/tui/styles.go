package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	violet = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"}
	green  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	amber  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	red    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	grey   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}
)

// ResultStyle highlights a computed timestamp. The CLI's pretty output
// uses it too.
var ResultStyle = lipgloss.NewStyle().Bold(true).Foreground(amber)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(violet)
	hintStyle  = lipgloss.NewStyle().Italic(true).Foreground(grey)
	errStyle   = lipgloss.NewStyle().Foreground(red)
	helpStyle  = lipgloss.NewStyle().Foreground(grey).MarginTop(1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(grey)
	activeTabStyle = tabStyle.Foreground(violet).Bold(true).Underline(true)

	labelStyle        = lipgloss.NewStyle().Width(14).Foreground(grey)
	fieldStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(grey)
	focusedFieldStyle = fieldStyle.BorderForeground(violet)

	// distance table and add result
	resultBox   = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(grey)
	numberStyle = lipgloss.NewStyle().Width(14).Align(lipgloss.Right).Bold(true).Foreground(green)
)
