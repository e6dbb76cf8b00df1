package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/leetcode-tui/internal/model"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Header        *lipgloss.Style
	PaneTitle     *lipgloss.Style
	Pane          *lipgloss.Style
	ActivePane    *lipgloss.Style
	Popup         *lipgloss.Style
	ErrorPopup    *lipgloss.Style
	PopupTitle    *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	HelpKey       *lipgloss.Style
	HelpDesc      *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Easy          *lipgloss.Style
	Medium        *lipgloss.Style
	Hard          *lipgloss.Style
	Accepted      *lipgloss.Style
	Attempted     *lipgloss.Style
	LocalSolution *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PaneTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Pane: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	ActivePane: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Popup: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	ErrorPopup: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 1),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	HelpDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Easy: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Medium: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Hard: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Accepted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Attempted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	LocalSolution: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Difficulty returns the style for a difficulty label.
func (s *Styles) Difficulty(d model.Difficulty) lipgloss.Style {
	switch d {
	case model.Easy:
		return *s.Easy
	case model.Medium:
		return *s.Medium
	case model.Hard:
		return *s.Hard
	}
	return *s.Item
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
