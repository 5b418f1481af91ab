package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainEvent es el sobre genérico de todos los eventos del dominio.
// EventData transporta el estado del aggregate serializado en JSON.
type DomainEvent struct {
	ID            uuid.UUID       `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	EventData     json.RawMessage `json:"event_data"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewDomainEvent construye un evento serializando el payload recibido.
func NewDomainEvent(aggregateType, eventType string, payload any) (DomainEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return DomainEvent{}, fmt.Errorf("error serializing %s event: %w", eventType, err)
	}

	return DomainEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		EventType:     eventType,
		EventData:     data,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// Publisher anuncia eventos del dominio a los consumidores interesados.
// Las fallas de publicación se registran, nunca abortan el comando que las originó.
type Publisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
