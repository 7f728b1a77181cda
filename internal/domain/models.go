package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Page represents one searchable page of the site index
type Page struct {
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Section   string     `json:"section"`
	Date      *time.Time `json:"date,omitempty"`
	Permalink string     `json:"permalink"`
}

// IndexPayload is the JSON document served as the search index
type IndexPayload struct {
	Pages []Page `json:"pages"`
}

// dateLayouts are the date formats accepted in the index, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an index date. An empty or unrecognised value yields nil.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// UnmarshalJSON decodes a page, tolerating odd date values
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title     string          `json:"title"`
		Summary   string          `json:"summary"`
		Section   string          `json:"section"`
		Date      json.RawMessage `json:"date"`
		Permalink string          `json:"permalink"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Title = raw.Title
	p.Summary = raw.Summary
	p.Section = raw.Section
	p.Permalink = raw.Permalink
	p.Date = nil

	var date string
	if len(raw.Date) > 0 && json.Unmarshal(raw.Date, &date) == nil {
		p.Date = ParseDate(date)
	}
	return nil
}
