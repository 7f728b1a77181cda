package index

import (
	"context"
	"log"
	"sync"

	"sitesearch/internal/domain"
	"sitesearch/internal/eventbus"
)

// Store holds the page list for the lifetime of a session.
// The index is fetched at most once; a failed fetch leaves an empty list
// and is never retried.
type Store struct {
	mu        sync.RWMutex
	source    Source
	bus       eventbus.EventBus
	attempted bool
	ready     bool
	pages     []domain.Page
}

// NewStore creates a store reading from source. bus may be nil.
func NewStore(source Source, bus eventbus.EventBus) *Store {
	return &Store{
		source: source,
		bus:    bus,
		pages:  []domain.Page{},
	}
}

// Begin marks the load as attempted. It returns true only for the first call,
// the caller that gets true is responsible for Fetch and Complete.
func (s *Store) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempted {
		return false
	}
	s.attempted = true
	return true
}

// Fetch retrieves and decodes the index without touching the store state
func (s *Store) Fetch(ctx context.Context) ([]domain.Page, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Complete stores the outcome of a fetch. Errors collapse to an empty list.
func (s *Store) Complete(pages []domain.Page, err error) {
	s.mu.Lock()
	if err != nil || pages == nil {
		s.pages = []domain.Page{}
	} else {
		s.pages = pages
	}
	s.ready = true
	count := len(s.pages)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Search index unavailable (%s): %v", s.source, err)
		s.publish(domain.IndexFailedEvent{Err: err})
		return
	}

	log.Printf("Search index loaded from %s: %d pages", s.source, count)
	s.publish(domain.IndexLoadedEvent{Count: count})
}

// Load runs the whole lazy load synchronously. Subsequent calls do nothing.
func (s *Store) Load(ctx context.Context) {
	if !s.Begin() {
		return
	}
	pages, err := s.Fetch(ctx)
	s.Complete(pages, err)
}

// Pages returns the loaded pages. The slice must not be modified.
func (s *Store) Pages() []domain.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages
}

// Attempted reports whether a load has been started
func (s *Store) Attempted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attempted
}

// Ready reports whether a load has completed, successfully or not
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Source returns where the index is read from
func (s *Store) Source() Source {
	return s.source
}

func (s *Store) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
