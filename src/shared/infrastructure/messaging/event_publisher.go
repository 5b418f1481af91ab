package messaging

import (
	"context"
	"log"
	"sync"

	"sales/src/shared/domain/event"
)

// InMemoryEventStore acumula los eventos publicados, protegido por mutex
// para los publishers concurrentes.
type InMemoryEventStore struct {
	mu     sync.RWMutex
	events []event.DomainEvent
}

// NewInMemoryEventStore crea un store vacío.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{}
}

// Append agrega un evento al store.
func (s *InMemoryEventStore) Append(e event.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events devuelve una copia de los eventos acumulados.
func (s *InMemoryEventStore) Events() []event.DomainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.DomainEvent, len(s.events))
	copy(out, s.events)
	return out
}

// EventsByType devuelve los eventos de un tipo dado, en orden de llegada.
func (s *InMemoryEventStore) EventsByType(eventType string) []event.DomainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []event.DomainEvent
	for _, e := range s.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// StorePublisher implementa event.Publisher registrando cada evento en el
// log y anexándolo al store en memoria. El broker real queda detrás de la
// interfaz: cambiar de transporte no toca a los casos de uso.
type StorePublisher struct {
	store *InMemoryEventStore
}

// NewStorePublisher crea un publisher respaldado por el store recibido.
func NewStorePublisher(store *InMemoryEventStore) *StorePublisher {
	return &StorePublisher{store: store}
}

// Publish anuncia el evento. Nunca reintenta: una publicación es un único
// intento y la falla queda en manos del caller, que solo la loguea.
func (p *StorePublisher) Publish(ctx context.Context, e event.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.store.Append(e)
	log.Printf("Event %s published for aggregate %s (id=%s)", e.EventType, e.AggregateType, e.ID)
	return nil
}
