package eventbus

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sitesearch/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan domain.DomainEvent, 1)
	b.Subscribe(EventIndexLoaded, func(e DomainEvent) { got <- e })

	b.Publish(domain.IndexLoadedEvent{Count: 3})

	select {
	case e := <-got:
		require.Equal(t, domain.IndexLoadedEvent{Count: 3}, e)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	loaded := make(chan struct{}, 1)
	failed := make(chan struct{}, 1)
	b.Subscribe(EventIndexLoaded, func(DomainEvent) { loaded <- struct{}{} })
	b.Subscribe(EventIndexFailed, func(DomainEvent) { failed <- struct{}{} })

	b.Publish(domain.IndexFailedEvent{})

	select {
	case <-failed:
	case <-time.After(time.Second):
		t.Fatal("failed handler not called")
	}
	require.Len(t, loaded, 0)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	calls := make(chan struct{}, 4)
	unsubscribe := b.Subscribe(EventOverlayClosed, func(DomainEvent) { calls <- struct{}{} })
	done := make(chan struct{}, 4)
	b.Subscribe(EventOverlayClosed, func(DomainEvent) { done <- struct{}{} })

	unsubscribe()
	b.Publish(domain.OverlayClosedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remaining handler not called")
	}
	require.Len(t, calls, 0)
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan struct{}, 1)
	b.Subscribe(EventOverlayOpened, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventOverlayOpened, func(DomainEvent) { got <- struct{}{} })

	b.Publish(domain.OverlayOpenedEvent{})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("handler after panicking one was not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() { b.Publish(domain.OverlayOpenedEvent{}) })
}

func TestPublishIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	b := New()
	got := make(chan struct{}, 1)
	b.Subscribe(EventIndexLoaded, func(DomainEvent) { got <- struct{}{} })
	b.Publish(domain.IndexLoadedEvent{Count: 1})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	b.Close()
	require.Empty(t, buf.String())
}
