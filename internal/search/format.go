package search

import "time"

// DefaultSummaryLimit is the number of characters kept from a summary
const DefaultSummaryLimit = 120

const (
	ellipsis   = "..."
	untitled   = "Untitled"
	dateLayout = "Jan 2, 2006"
)

// Truncate cuts text to max characters and appends an ellipsis when it was longer
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + ellipsis
}

// FormatDate renders a page date as "Jan 1, 2024", or "" when absent
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
