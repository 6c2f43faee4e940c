package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	name string
}

func (e testEvent) EventName() string { return e.name }

func startedDispatcher(t *testing.T) *InMemoryEventDispatcher {
	t.Helper()
	d := NewInMemoryEventDispatcher(10, nil)
	require.NoError(t, d.Start())
	t.Cleanup(func() { _ = d.Stop() })
	return d
}

func TestPublishDeliversToSubscribedHandler(t *testing.T) {
	d := startedDispatcher(t)

	var mu sync.Mutex
	var received []string
	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e.EventName())
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Publish(testEvent{name: "ticket.created"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPublishSkipsUnrelatedHandler(t *testing.T) {
	d := startedDispatcher(t)

	var mu sync.Mutex
	var count int
	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Publish(testEvent{name: "user.registered"}))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestPublishWhenStoppedFails(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nil)
	assert.Error(t, d.Publish(testEvent{name: "ticket.created"}))
}

func TestStartTwiceFails(t *testing.T) {
	d := startedDispatcher(t)
	assert.Error(t, d.Start())
}

func TestUnsubscribeRemovesHandler(t *testing.T) {
	d := startedDispatcher(t)

	var mu sync.Mutex
	var count int
	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))
	require.NoError(t, d.Unsubscribe("ticket.created", handler))

	require.NoError(t, d.Publish(testEvent{name: "ticket.created"}))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestPublishAllDeliversInOrderOfNames(t *testing.T) {
	d := startedDispatcher(t)

	var mu sync.Mutex
	seen := map[string]int{}
	for _, name := range []string{"ticket.created", "ticket.status_changed"} {
		n := name
		require.NoError(t, d.Subscribe(n, NewHandlerFunc(n, func(e DomainEvent) error {
			mu.Lock()
			defer mu.Unlock()
			seen[e.EventName()]++
			return nil
		})))
	}

	require.NoError(t, d.PublishAll([]DomainEvent{
		testEvent{name: "ticket.created"},
		testEvent{name: "ticket.status_changed"},
	}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["ticket.created"] == 1 && seen["ticket.status_changed"] == 1
	}, time.Second, 10*time.Millisecond)
}
