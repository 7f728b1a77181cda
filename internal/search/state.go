package search

// Phase is the transition state of the overlay
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Session is a snapshot of the search session state
type Session struct {
	Phase         Phase
	Query         string
	SelectedIndex int // -1 when nothing is selected
}

// IsOpen reports whether the overlay is visible, including while it animates
func (s Session) IsOpen() bool {
	return s.Phase != PhaseClosed
}

// IsClosing reports whether a close transition is in progress
func (s Session) IsClosing() bool {
	return s.Phase == PhaseClosing
}
