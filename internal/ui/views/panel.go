package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sitesearch/internal/search"
)

const (
	maxPanelWidth = 76
	minPanelWidth = 24
	// rows taken by the border, title, input, separators, count and help lines
	panelChrome = 9
)

// PanelState is everything needed to draw the search overlay
type PanelState struct {
	Width     int // terminal size
	Height    int
	Input     string // rendered query input
	Results   search.Results
	Selected  int
	Phase     search.Phase
	ShowDates bool
	HelpLine  string
}

// PanelWidth returns the inner width of the panel for a terminal width
func PanelWidth(termWidth int) int {
	w := termWidth - 8
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

// RenderPanel draws the overlay panel
func (r *Renderer) RenderPanel(s PanelState) string {
	st := r.styles
	w := PanelWidth(s.Width)

	var lines []string
	lines = append(lines, st.PanelTitle.Render("Search"))
	lines = append(lines, st.Icon.Render("⌕")+" "+st.Input.Render(s.Input))
	lines = append(lines, st.Separator.Render(strings.Repeat("─", w)))

	if p, ok := s.Results.Placeholder(); ok {
		lines = append(lines, r.renderPlaceholder(p, w)...)
	} else {
		lines = append(lines, r.renderItems(s, w)...)
	}

	lines = append(lines, st.Separator.Render(strings.Repeat("─", w)))
	if s.HelpLine != "" {
		lines = append(lines, s.HelpLine)
	}

	panel := st.Panel.Width(w + 2).Render(strings.Join(lines, "\n"))
	if s.Phase == search.PhaseClosing {
		return st.Closing.Render(StripANSI(panel))
	}
	return panel
}

func (r *Renderer) renderPlaceholder(p search.Placeholder, w int) []string {
	st := r.styles
	glyph := "⌕"
	if p == search.NoResultsPlaceholder {
		glyph = "!"
	}
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	return []string{
		"",
		center.Render(st.EmptyIcon.Render(glyph)),
		center.Render(st.EmptyTitle.Render(p.Title)),
		center.Render(st.Dim.Render(p.Subtitle)),
		"",
	}
}

// visibleWindow returns the range of items that fit, keeping selected in view
func visibleWindow(count, selected, height int) (int, int) {
	maxItems := (height - panelChrome) / 2
	if maxItems < 1 {
		maxItems = 1
	}
	if count <= maxItems {
		return 0, count
	}
	start := 0
	if selected >= maxItems {
		start = selected - maxItems + 1
	}
	end := start + maxItems
	if end > count {
		end = count
	}
	return start, end
}

func (r *Renderer) renderItems(s PanelState, w int) []string {
	st := r.styles
	items := s.Results.Items
	start, end := visibleWindow(len(items), s.Selected, s.Height)

	var lines []string
	for _, item := range items[start:end] {
		selected := item.Index == s.Selected

		marker := "  "
		titleStyle := st.ResultTitle
		if selected {
			marker = st.Highlight.Render("› ")
			titleStyle = titleStyle.Underline(true)
		}

		meta := item.Section
		if s.ShowDates && item.Date != "" {
			if meta != "" {
				meta += " · "
			}
			meta += item.Date
		}
		metaW := runewidth.StringWidth(meta)

		titleW := w - 4 - metaW
		if metaW > 0 {
			titleW--
		}
		title := renderSegments(item.Title, titleW, titleStyle, st.Highlight)
		gap := w - 4 - lipgloss.Width(title) - metaW
		if gap < 1 {
			gap = 1
		}

		line := marker + st.Icon.Render(item.Icon.Glyph) + " " + title
		if meta != "" {
			line += strings.Repeat(" ", gap) + r.renderMeta(item, s.ShowDates)
		}
		lines = append(lines, line)

		summary := ""
		if len(item.Summary) > 0 {
			summary = renderSegments(item.Summary, w-4, st.Summary, st.Highlight)
		}
		lines = append(lines, "    "+summary)
	}

	count := fmt.Sprintf("%d result", len(items))
	if len(items) != 1 {
		count += "s"
	}
	if start > 0 || end < len(items) {
		count += fmt.Sprintf(" · showing %d-%d", start+1, end)
	}
	lines = append(lines, st.Dim.Render(count))
	return lines
}

func (r *Renderer) renderMeta(item search.Item, showDates bool) string {
	st := r.styles
	parts := []string{}
	if item.Section != "" {
		parts = append(parts, st.Section.Render(item.Section))
	}
	if showDates && item.Date != "" {
		parts = append(parts, st.Date.Render(item.Date))
	}
	return strings.Join(parts, st.Dim.Render(" · "))
}
