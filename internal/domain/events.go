package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexLoaded     EventType = "IndexLoaded"
	EventIndexFailed     EventType = "IndexFailed"
	EventOverlayOpened   EventType = "OverlayOpened"
	EventOverlayClosed   EventType = "OverlayClosed"
	EventResultActivated EventType = "ResultActivated"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexLoadedEvent is emitted once the index has been fetched and decoded
type IndexLoadedEvent struct {
	Count int
}

func (e IndexLoadedEvent) Type() EventType { return EventIndexLoaded }

// IndexFailedEvent is emitted when the index could not be loaded.
// The page list is empty for the rest of the session.
type IndexFailedEvent struct {
	Err error
}

func (e IndexFailedEvent) Type() EventType { return EventIndexFailed }

// OverlayOpenedEvent is emitted when the overlay starts opening
type OverlayOpenedEvent struct{}

func (e OverlayOpenedEvent) Type() EventType { return EventOverlayOpened }

// OverlayClosedEvent is emitted when the close transition has finished
type OverlayClosedEvent struct{}

func (e OverlayClosedEvent) Type() EventType { return EventOverlayClosed }

// ResultActivatedEvent is emitted when a result is chosen with enter
type ResultActivatedEvent struct {
	Permalink string
	Title     string
}

func (e ResultActivatedEvent) Type() EventType { return EventResultActivated }
