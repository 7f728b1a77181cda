package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// urlPlaceholder in the open command is replaced by the result URL.
// Without it the URL is appended as the last argument.
const urlPlaceholder = "{url}"

// Opener runs the configured command for an activated result
type Opener struct {
	command string
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOpener creates an opener for command, which may be empty
func NewOpener(command string) *Opener {
	return &Opener{command: strings.TrimSpace(command)}
}

// SetProgram sets the program reference for terminal management
func (o *Opener) SetProgram(p *tea.Program) {
	o.program = p
}

// Enabled reports whether an open command is configured
func (o *Opener) Enabled() bool {
	return o.command != ""
}

// Command builds the command line for url
func (o *Opener) Command(url string) []string {
	fields := strings.Fields(o.command)
	if len(fields) == 0 {
		return nil
	}

	args := make([]string, 0, len(fields)+1)
	substituted := false
	for _, f := range fields {
		if strings.Contains(f, urlPlaceholder) {
			f = strings.ReplaceAll(f, urlPlaceholder, url)
			substituted = true
		}
		args = append(args, f)
	}
	if !substituted {
		args = append(args, url)
	}
	return args
}

// Open runs the command for url. The terminal is handed over while it runs
// so terminal browsers work too.
func (o *Opener) Open(url string) error {
	args := o.Command(url)
	if len(args) == 0 {
		return fmt.Errorf("no open command configured")
	}
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	return suspendProgram(o.program, func() error {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stdin = os.Stdin
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("run %s: %w", args[0], err)
		}
		return nil
	})
}

// suspendProgram hands the terminal to fn and takes it back afterwards, even
// when fn fails
func suspendProgram(p *tea.Program, fn func() error) error {
	if err := p.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Clear screen to reduce visual artifacts when returning
		fmt.Print("\x1b[2J\x1b[H")
		time.Sleep(150 * time.Millisecond)
		_ = p.RestoreTerminal()
	}()
	return fn()
}
