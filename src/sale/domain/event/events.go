package event

import (
	"sales/src/sale/domain/entity"
	shared "sales/src/shared/domain/event"
)

// AggregateType identifica al aggregate Sale en los eventos publicados.
const AggregateType = "Sale"

const (
	SaleCreatedEventType   = "SaleCreated"
	SaleUpdatedEventType   = "SaleUpdated"
	SaleCancelledEventType = "SaleCancelled"
)

// NewSaleCreatedEvent anuncia la creación de una venta.
func NewSaleCreatedEvent(sale *entity.Sale) (shared.DomainEvent, error) {
	return shared.NewDomainEvent(AggregateType, SaleCreatedEventType, sale)
}

// NewSaleUpdatedEvent anuncia la actualización de una venta.
func NewSaleUpdatedEvent(sale *entity.Sale) (shared.DomainEvent, error) {
	return shared.NewDomainEvent(AggregateType, SaleUpdatedEventType, sale)
}

// NewSaleCancelledEvent anuncia la cancelación de una venta.
func NewSaleCancelledEvent(sale *entity.Sale) (shared.DomainEvent, error) {
	return shared.NewDomainEvent(AggregateType, SaleCancelledEventType, sale)
}

// EventForUpdate selecciona el evento a publicar tras actualizar una venta:
// una venta que quedó cancelada anuncia SaleCancelled en lugar de SaleUpdated.
func EventForUpdate(sale *entity.Sale) (shared.DomainEvent, error) {
	if sale.SaleStatus == entity.SaleStatusCancelled {
		return NewSaleCancelledEvent(sale)
	}
	return NewSaleUpdatedEvent(sale)
}
