package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popup horizontally centred near the top of the
// screen. The main content stays visible around it, greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, width, height int) string {
	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)

	x := (width - popupW) / 2
	if x < 0 {
		x = 0
	}
	y := height / 8
	if y+len(popupLines) > height {
		y = height - len(popupLines)
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(mainContent, "\n")
	for len(baseLines) < height || len(baseLines) < y+len(popupLines) {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for row, line := range baseLines {
		plain := ansiRE.ReplaceAllString(line, "")
		i := row - y
		if i < 0 || i >= len(popupLines) {
			out[row] = pr.backdrop(plain)
			continue
		}

		popupLine := popupLines[i]
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := runewidth.TruncateLeft(plain, x+lipgloss.Width(popupLine), "")
		out[row] = pr.backdrop(left) + popupLine + pr.backdrop(right)
	}
	return strings.Join(out, "\n")
}

func (pr *PopupRenderer) backdrop(s string) string {
	if s == "" {
		return ""
	}
	return pr.styles.Backdrop.Render(s)
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style sequences
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
