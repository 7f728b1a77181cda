package views

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/microcosm-cc/bluemonday"

	"sitesearch/internal/search"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags turns index text that may carry markup into plain terminal text
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	plain := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(plain), " ")
}

// renderSegments styles highlighted text and cuts it to maxWidth cells,
// ending with an ellipsis when something was dropped.
func renderSegments(segments []search.Segment, maxWidth int, base, mark lipgloss.Style) string {
	if maxWidth <= 0 {
		return ""
	}

	total := runewidth.StringWidth(search.PlainText(segments))
	budget := maxWidth
	truncated := total > maxWidth
	if truncated {
		budget = maxWidth - 1
	}

	var b strings.Builder
	used := 0
	for _, seg := range segments {
		if used >= budget {
			break
		}
		text := seg.Text
		if w := runewidth.StringWidth(text); used+w > budget {
			text = runewidth.Truncate(text, budget-used, "")
		}
		used += runewidth.StringWidth(text)

		style := base
		if seg.Match {
			style = mark
		}
		b.WriteString(style.Render(text))
	}
	if truncated {
		b.WriteString(base.Render("…"))
	}
	return b.String()
}
