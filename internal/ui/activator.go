package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/search"
)

// ProgramActivator opens and closes the overlay of a running program from
// outside the key handling, e.g. from signal handlers or other goroutines.
type ProgramActivator struct {
	program *tea.Program
}

var _ search.Activator = (*ProgramActivator)(nil)

// NewProgramActivator creates an activator for p
func NewProgramActivator(p *tea.Program) *ProgramActivator {
	return &ProgramActivator{program: p}
}

// Open opens the search overlay
func (a *ProgramActivator) Open() {
	if a.program != nil {
		a.program.Send(OpenSearchMsg{})
	}
}

// Close closes the search overlay
func (a *ProgramActivator) Close() {
	if a.program != nil {
		a.program.Send(CloseSearchMsg{})
	}
}
