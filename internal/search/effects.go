package search

import "time"

// Effect is a side effect the host must carry out for the controller
type Effect interface {
	Type() string
}

// TimerKind names a deferred step of a transition
type TimerKind int

const (
	// FocusTimer focuses the input once the open transition has played
	FocusTimer TimerKind = iota
	// CloseTimer finishes the close transition
	CloseTimer
)

func (k TimerKind) String() string {
	switch k {
	case FocusTimer:
		return "focus"
	case CloseTimer:
		return "close"
	default:
		return "unknown"
	}
}

// Timer is a deferred callback. It is only honoured while its generation is
// current, so any later transition cancels it.
type Timer struct {
	Kind       TimerKind
	Generation uint64
	Delay      time.Duration
}

// ScheduleEffect asks the host to call Controller.Fire with Timer after Timer.Delay
type ScheduleEffect struct {
	Timer Timer
}

func (e ScheduleEffect) Type() string { return "schedule" }

// LoadIndexEffect asks the host to fetch the index and complete the store
type LoadIndexEffect struct{}

func (e LoadIndexEffect) Type() string { return "load_index" }

// FocusInputEffect asks the host to focus the query input
type FocusInputEffect struct{}

func (e FocusInputEffect) Type() string { return "focus_input" }

// ClearInputEffect asks the host to empty the query input
type ClearInputEffect struct{}

func (e ClearInputEffect) Type() string { return "clear_input" }

// NavigateEffect asks the host to follow a result's link
type NavigateEffect struct {
	Permalink string
	Title     string
}

func (e NavigateEffect) Type() string { return "navigate" }
