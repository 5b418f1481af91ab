package messaging

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/src/shared/domain/event"
)

func mustEvent(t *testing.T, eventType string) event.DomainEvent {
	t.Helper()
	e, err := event.NewDomainEvent("Sale", eventType, map[string]any{"id": 1})
	require.NoError(t, err)
	return e
}

func TestStorePublisherAppendsToStore(t *testing.T) {
	store := NewInMemoryEventStore()
	publisher := NewStorePublisher(store)

	e := mustEvent(t, "SaleCreated")
	require.NoError(t, publisher.Publish(context.Background(), e))

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, e.ID, events[0].ID)
	assert.Equal(t, "SaleCreated", events[0].EventType)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestStorePublisherCancelledContext(t *testing.T) {
	store := NewInMemoryEventStore()
	publisher := NewStorePublisher(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.Publish(ctx, mustEvent(t, "SaleCreated"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.Events())
}

func TestEventsByType(t *testing.T) {
	store := NewInMemoryEventStore()
	store.Append(mustEvent(t, "SaleCreated"))
	store.Append(mustEvent(t, "SaleCancelled"))
	store.Append(mustEvent(t, "SaleCreated"))

	assert.Len(t, store.EventsByType("SaleCreated"), 2)
	assert.Len(t, store.EventsByType("SaleCancelled"), 1)
	assert.Empty(t, store.EventsByType("SaleUpdated"))
}

func TestEventsReturnsACopy(t *testing.T) {
	store := NewInMemoryEventStore()
	store.Append(mustEvent(t, "SaleCreated"))

	events := store.Events()
	events[0].EventType = "mutated"

	assert.Equal(t, "SaleCreated", store.Events()[0].EventType)
}

func TestInMemoryEventStoreConcurrentAppend(t *testing.T) {
	store := NewInMemoryEventStore()
	publisher := NewStorePublisher(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := event.NewDomainEvent("Sale", "SaleCreated", nil)
			assert.NoError(t, err)
			assert.NoError(t, publisher.Publish(context.Background(), e))
		}()
	}
	wg.Wait()

	assert.Len(t, store.Events(), 20)
}
