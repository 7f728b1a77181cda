package search

// Activator is the entry point other parts of the program use to show or
// hide the overlay without holding the controller itself.
type Activator interface {
	Open()
	Close()
}
