package search

import (
	"strings"

	"sitesearch/internal/domain"
)

// DefaultLimit is the maximum number of results shown for a query
const DefaultLimit = 20

// NormalizeQuery lowercases and trims a query the way matching expects it
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the first limit pages, in input order, whose title or summary
// contains the query. Matching is case-insensitive substring containment.
// An empty or whitespace-only query matches nothing.
func Filter(pages []domain.Page, query string, limit int) []domain.Page {
	q := NormalizeQuery(query)
	if q == "" || len(pages) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var matches []domain.Page
	for _, p := range pages {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Summary), q) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
