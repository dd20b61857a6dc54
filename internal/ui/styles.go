// Package ui holds the shared terminal palette and styles.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("205") // Pink/magenta
	ColorSuccess = lipgloss.Color("35")  // Green
	ColorWarning = lipgloss.Color("214") // Gold/yellow
	ColorError   = lipgloss.Color("196") // Red
	ColorDim     = lipgloss.Color("241") // Gray
	ColorAccent  = lipgloss.Color("39")  // Blue
)

const (
	SymbolPrompt = "❯"
	SymbolBullet = "●"
	SymbolTree   = "└"
	SymbolArrow  = "▸"
)

var (
	UserStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ToolCallStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ToolResultStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorDim)
)
