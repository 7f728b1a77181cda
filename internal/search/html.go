package search

import (
	"html"
	"strconv"
	"strings"
)

const (
	markOpen  = `<mark class="search-highlight">`
	markClose = `</mark>`
)

// RenderHTML renders the results panel as the site's results markup.
// selected marks one entry as the keyboard selection, -1 for none.
func RenderHTML(r Results, selected int) string {
	var b strings.Builder

	if p, ok := r.Placeholder(); ok {
		writePlaceholder(&b, p)
		return b.String()
	}

	for _, item := range r.Items {
		class := "search-result-item"
		if item.Index == selected {
			class += " search-result-item--selected"
		}

		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(item.Permalink))
		b.WriteString(`" class="`)
		b.WriteString(class)
		b.WriteString(`" data-result-index="`)
		b.WriteString(strconv.Itoa(item.Index))
		b.WriteString(`">`)

		b.WriteString(`<div class="search-result-header">`)
		b.WriteString(`<i class="`)
		b.WriteString(html.EscapeString(item.Icon.Class))
		b.WriteString(` search-result-icon"></i>`)
		b.WriteString(`<div class="search-result-info">`)
		b.WriteString(`<div class="search-result-title">`)
		b.WriteString(HighlightHTML(item.Title))
		b.WriteString(`</div>`)
		b.WriteString(`<div class="search-result-meta">`)
		if item.Section != "" {
			b.WriteString(`<span class="search-result-section">`)
			b.WriteString(html.EscapeString(item.Section))
			b.WriteString(`</span>`)
		}
		if item.Date != "" {
			b.WriteString(`<span class="search-result-date">`)
			b.WriteString(item.Date)
			b.WriteString(`</span>`)
		}
		b.WriteString(`</div></div></div>`)

		if len(item.Summary) > 0 {
			b.WriteString(`<div class="search-result-summary">`)
			b.WriteString(HighlightHTML(item.Summary))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</a>`)
	}
	return b.String()
}

// HighlightHTML escapes segments and wraps matches in a highlight mark
func HighlightHTML(segments []Segment) string {
	return MarkSegments(segments, html.EscapeString, func(s string) string {
		return markOpen + html.EscapeString(s) + markClose
	})
}

func writePlaceholder(b *strings.Builder, p Placeholder) {
	b.WriteString(`<div class="search-empty-state">`)
	b.WriteString(`<div class="search-empty-icon"><i class="`)
	b.WriteString(p.Icon)
	b.WriteString(` text-[1rem]"></i></div>`)
	b.WriteString(`<p class="search-empty-title">`)
	b.WriteString(html.EscapeString(p.Title))
	b.WriteString(`</p>`)
	b.WriteString(`<p class="search-empty-subtitle">`)
	b.WriteString(html.EscapeString(p.Subtitle))
	b.WriteString(`</p>`)
	b.WriteString(`</div>`)
}
