package search

import (
	"regexp"
	"strings"
)

// Segment is a run of text that either matched the query or did not
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text around every case-insensitive occurrence of query.
// The query is taken literally, regex metacharacters have no special meaning.
func Highlight(text, query string) []Segment {
	query = strings.TrimSpace(query)
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// PlainText joins segments back into the original text
func PlainText(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// MarkSegments renders segments with mark applied to matched runs and plain
// applied to the rest. Either function may be nil.
func MarkSegments(segments []Segment, plain, mark func(string) string) string {
	var b strings.Builder
	for _, s := range segments {
		switch {
		case s.Match && mark != nil:
			b.WriteString(mark(s.Text))
		case !s.Match && plain != nil:
			b.WriteString(plain(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
