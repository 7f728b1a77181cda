package search

import (
	"log"
	"time"

	"sitesearch/internal/domain"
	"sitesearch/internal/eventbus"
	"sitesearch/internal/index"
)

const (
	// DefaultFocusDelay lets the open transition settle before focusing the input
	DefaultFocusDelay = 20 * time.Millisecond
	// DefaultCloseDelay lets the close transition play before the panel is reset
	DefaultCloseDelay = 180 * time.Millisecond
)

// Options configures a Controller
type Options struct {
	Store        *index.Store
	Bus          eventbus.EventBus
	Limit        int
	SummaryLimit int
	FocusDelay   time.Duration
	CloseDelay   time.Duration
	Icons        IconSet
	Clean        func(string) string
}

// Controller owns the overlay lifecycle, the query, the results and the
// selection cursor. It is not safe for concurrent use; the host drives it
// from a single goroutine and performs the returned effects.
type Controller struct {
	store      *index.Store
	bus        eventbus.EventBus
	render     RenderOptions
	focusDelay time.Duration
	closeDelay time.Duration

	phase      Phase
	generation uint64
	query      string
	selected   int
	results    Results
}

// NewController creates a closed controller
func NewController(opts Options) *Controller {
	if opts.Store == nil {
		opts.Store = index.NewStore(index.NewSource(index.DefaultLocation), opts.Bus)
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.SummaryLimit <= 0 {
		opts.SummaryLimit = DefaultSummaryLimit
	}
	if opts.FocusDelay <= 0 {
		opts.FocusDelay = DefaultFocusDelay
	}
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = DefaultCloseDelay
	}
	if opts.Icons == nil {
		opts.Icons = DefaultIcons()
	}

	return &Controller{
		store: opts.Store,
		bus:   opts.Bus,
		render: RenderOptions{
			Limit:        opts.Limit,
			SummaryLimit: opts.SummaryLimit,
			Icons:        opts.Icons,
			Clean:        opts.Clean,
		},
		focusDelay: opts.FocusDelay,
		closeDelay: opts.CloseDelay,
		phase:      PhaseClosed,
		selected:   -1,
		results:    EmptyResults(),
	}
}

// Store returns the index store backing the controller
func (c *Controller) Store() *index.Store {
	return c.store
}

// Open shows the overlay. The first open also requests the index load.
// Opening while a close is in flight cancels the close.
func (c *Controller) Open() []Effect {
	switch c.phase {
	case PhaseOpening, PhaseOpen:
		return nil
	}

	c.transition(PhaseOpening)

	var effects []Effect
	if c.store.Begin() {
		effects = append(effects, LoadIndexEffect{})
	}
	effects = append(effects, ScheduleEffect{Timer: Timer{
		Kind:       FocusTimer,
		Generation: c.generation,
		Delay:      c.focusDelay,
	}})

	c.publish(domain.OverlayOpenedEvent{})
	return effects
}

// Close starts the close transition. It does nothing when the overlay is
// already closed or closing.
func (c *Controller) Close() []Effect {
	switch c.phase {
	case PhaseClosed, PhaseClosing:
		return nil
	}

	c.transition(PhaseClosing)
	return []Effect{ScheduleEffect{Timer: Timer{
		Kind:       CloseTimer,
		Generation: c.generation,
		Delay:      c.closeDelay,
	}}}
}

// Fire completes a scheduled step. Timers from an earlier generation are stale
// and ignored.
func (c *Controller) Fire(t Timer) []Effect {
	if t.Generation != c.generation {
		log.Printf("Search: ignoring stale %v timer (generation %d, current %d)", t.Kind, t.Generation, c.generation)
		return nil
	}

	switch {
	case t.Kind == FocusTimer && c.phase == PhaseOpening:
		c.transition(PhaseOpen)
		return []Effect{FocusInputEffect{}}

	case t.Kind == CloseTimer && c.phase == PhaseClosing:
		c.transition(PhaseClosed)
		c.query = ""
		c.selected = -1
		c.results = EmptyResults()
		c.publish(domain.OverlayClosedEvent{})
		return []Effect{ClearInputEffect{}}
	}
	return nil
}

// SetQuery re-renders the results for a new query and clears the selection.
// Input is ignored while the overlay is closed.
func (c *Controller) SetQuery(query string) {
	if c.phase == PhaseClosed {
		return
	}
	c.query = query
	c.results = c.Render(query)
	c.selected = -1
}

// Refresh re-renders the current query, used once the index has arrived
func (c *Controller) Refresh() {
	c.results = c.Render(c.query)
	c.clampSelection()
}

// Render builds the results panel for query against the loaded pages
func (c *Controller) Render(query string) Results {
	return BuildResults(c.store.Pages(), query, c.render)
}

// Filter returns the matching pages for query
func (c *Controller) Filter(query string) []domain.Page {
	return Filter(c.store.Pages(), query, c.render.Limit)
}

// MoveDown moves the selection cursor down, stopping at the last result
func (c *Controller) MoveDown() {
	last := len(c.results.Items) - 1
	if c.selected < last {
		c.selected++
	}
}

// MoveUp moves the selection cursor up, stopping at -1 (no selection)
func (c *Controller) MoveUp() {
	if c.selected > -1 {
		c.selected--
	}
}

// Activate follows the selected result, if any
func (c *Controller) Activate() []Effect {
	if c.selected < 0 || c.selected >= len(c.results.Items) {
		return nil
	}
	item := c.results.Items[c.selected]
	c.publish(domain.ResultActivatedEvent{Permalink: item.Permalink, Title: item.Page.Title})
	return []Effect{NavigateEffect{Permalink: item.Permalink, Title: item.Page.Title}}
}

// Session returns a snapshot of the session state
func (c *Controller) Session() Session {
	return Session{
		Phase:         c.phase,
		Query:         c.query,
		SelectedIndex: c.selected,
	}
}

// Results returns the currently rendered results
func (c *Controller) Results() Results {
	return c.results
}

// Selected returns the selection cursor, -1 when nothing is selected
func (c *Controller) Selected() int {
	return c.selected
}

// transition moves to a new phase and invalidates any pending timer
func (c *Controller) transition(to Phase) {
	c.phase = to
	c.generation++
}

func (c *Controller) clampSelection() {
	if c.selected > len(c.results.Items)-1 {
		c.selected = len(c.results.Items) - 1
	}
	if c.selected < -1 {
		c.selected = -1
	}
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
