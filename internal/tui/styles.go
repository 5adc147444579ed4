package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("250"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("96"))
	groupStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("175"))
	totalsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
