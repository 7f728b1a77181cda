package search

import "sitesearch/internal/domain"

// ResultKind is one of the three mutually exclusive states of the results panel
type ResultKind int

const (
	// KindStartSearching is shown while the query is empty
	KindStartSearching ResultKind = iota
	// KindNoResults is shown when a non-empty query matched nothing
	KindNoResults
	// KindMatches is shown when there is at least one match
	KindMatches
)

func (k ResultKind) String() string {
	switch k {
	case KindStartSearching:
		return "start-searching"
	case KindNoResults:
		return "no-results"
	case KindMatches:
		return "matches"
	default:
		return "unknown"
	}
}

// Placeholder is the text shown in lieu of matches
type Placeholder struct {
	Icon     string
	Title    string
	Subtitle string
}

var (
	StartSearchingPlaceholder = Placeholder{
		Icon:     "fa-solid fa-magnifying-glass",
		Title:    "Start searching",
		Subtitle: "Enter keywords to search articles.",
	}
	NoResultsPlaceholder = Placeholder{
		Icon:     "fa-solid fa-circle-exclamation",
		Title:    "No results found",
		Subtitle: "Try different keywords or check your spelling.",
	}
)

// Item is one rendered result entry
type Item struct {
	Index     int
	Icon      Icon
	Title     []Segment
	Summary   []Segment
	Section   string
	Date      string
	Permalink string
	Page      domain.Page
}

// Results is the view model of the results panel
type Results struct {
	Kind  ResultKind
	Query string
	Items []Item
}

// Placeholder returns the placeholder for the placeholder states
func (r Results) Placeholder() (Placeholder, bool) {
	switch r.Kind {
	case KindStartSearching:
		return StartSearchingPlaceholder, true
	case KindNoResults:
		return NoResultsPlaceholder, true
	default:
		return Placeholder{}, false
	}
}

// Len returns the number of rendered entries
func (r Results) Len() int {
	return len(r.Items)
}

// RenderOptions controls how results are built
type RenderOptions struct {
	Limit        int
	SummaryLimit int
	Icons        IconSet
	// Clean, when set, rewrites title and summary text before it is
	// truncated and highlighted. Matching always uses the raw text.
	Clean func(string) string
}

// EmptyResults is the initial state of the panel
func EmptyResults() Results {
	return Results{Kind: KindStartSearching}
}

// BuildResults filters pages for query and prepares the entries for display
func BuildResults(pages []domain.Page, query string, opts RenderOptions) Results {
	if NormalizeQuery(query) == "" {
		return Results{Kind: KindStartSearching, Query: query}
	}

	matches := Filter(pages, query, opts.Limit)
	if len(matches) == 0 {
		return Results{Kind: KindNoResults, Query: query}
	}

	icons := opts.Icons
	if icons == nil {
		icons = DefaultIcons()
	}
	summaryLimit := opts.SummaryLimit
	if summaryLimit <= 0 {
		summaryLimit = DefaultSummaryLimit
	}

	items := make([]Item, 0, len(matches))
	clean := opts.Clean
	if clean == nil {
		clean = func(s string) string { return s }
	}

	for i, p := range matches {
		title := clean(p.Title)
		if title == "" {
			title = untitled
		}
		items = append(items, Item{
			Index:     i,
			Icon:      icons.For(p.Section),
			Title:     Highlight(title, query),
			Summary:   Highlight(Truncate(clean(p.Summary), summaryLimit), query),
			Section:   p.Section,
			Date:      FormatDate(p.Date),
			Permalink: p.Permalink,
			Page:      p,
		})
	}
	return Results{Kind: KindMatches, Query: query, Items: items}
}
