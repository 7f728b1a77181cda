package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Input       lipgloss.Style
	Separator   lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	ResultTitle lipgloss.Style
	Summary     lipgloss.Style
	Section     lipgloss.Style
	Date        lipgloss.Style
	Icon        lipgloss.Style
	EmptyIcon   lipgloss.Style
	EmptyTitle  lipgloss.Style
	Closing     lipgloss.Style
	Backdrop    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		ResultTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Summary:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Section:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Date:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		EmptyIcon:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EmptyTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Closing:     lipgloss.NewStyle().Faint(true),
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
