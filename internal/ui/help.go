package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Search", []helpEntry{
		{"ctrl+k, /", "Open the search overlay"},
		{"esc", "Close the overlay"},
		{"type", "Filter pages by title or summary"},
	}},
	{"Results", []helpEntry{
		{"↓, ctrl+n", "Select next result"},
		{"↑, ctrl+p", "Select previous result"},
		{"enter", "Open the selected result"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors, for the pager and
// the inline help popup
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("sitesearch Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString("\n")
	help.WriteString(filterStyle.Render("  Matching is a case-insensitive substring search; up to 20 results are shown."))

	return help.String()
}

// helpHeaderLines keeps the title and the blank line under it pinned
const helpHeaderLines = 2

// HelpPager shows the help text in ov while the program is suspended
type HelpPager struct {
	program *tea.Program
	caption string
}

// NewHelpPager creates a pager whose status line names caption
func NewHelpPager(program *tea.Program, caption string) *HelpPager {
	return &HelpPager{program: program, caption: caption}
}

// Show pages content until the user quits ov
func (h *HelpPager) Show(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}
	return suspendProgram(h.program, func() error {
		root, err := oviewer.NewRoot(strings.NewReader(content))
		if err != nil {
			return fmt.Errorf("open pager: %w", err)
		}
		root.SetConfig(helpPagerConfig(h.caption))
		return root.Run()
	})
}

// helpPagerConfig leaves nothing behind on the terminal, since the overlay
// redraws on return
func helpPagerConfig(caption string) oviewer.Config {
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	cfg.General.SetCaption(caption)
	cfg.General.SetHeader(helpHeaderLines)
	cfg.General.SetWrapMode(true)
	return cfg
}
