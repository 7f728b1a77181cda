package ui

import (
	"sitesearch/internal/domain"
	"sitesearch/internal/search"
)

// OpenSearchMsg asks the running program to open the search overlay
type OpenSearchMsg struct{}

// CloseSearchMsg asks the running program to close the search overlay
type CloseSearchMsg struct{}

// indexLoadedMsg carries the result of the lazy index fetch
type indexLoadedMsg struct {
	pages []domain.Page
	err   error
}

// timerMsg is delivered when a scheduled overlay transition step is due
type timerMsg struct {
	timer search.Timer
}

// openResultMsg contains the result of running the open command
type openResultMsg struct {
	url string
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
