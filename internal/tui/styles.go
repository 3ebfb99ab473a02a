package tui

import "github.com/charmbracelet/lipgloss"

var (
	red    = lipgloss.Color("#e53935")
	yellow = lipgloss.Color("#FFC107")
	blue   = lipgloss.Color("#2196F3")
	lime   = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6b7280")
)

// Styles holds the lipgloss styles used by the browser
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Banlist lipgloss.Style
	Rare    lipgloss.Style
	Common  lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the browser's default styles
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lime),
		Label:   lipgloss.NewStyle().Foreground(blue),
		Value:   lipgloss.NewStyle().Bold(true),
		Banlist: lipgloss.NewStyle().Bold(true).Foreground(yellow).Background(red),
		Rare:    lipgloss.NewStyle().Foreground(blue).Bold(true),
		Common:  lipgloss.NewStyle().Foreground(muted),
		Name:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Help:    lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
