package event

import (
	"sales/src/product/domain/entity"
	shared "sales/src/shared/domain/event"
)

// AggregateType identifica a Product en los eventos publicados.
const AggregateType = "Product"

const (
	ProductCreatedEventType = "ProductCreated"
	ProductUpdatedEventType = "ProductUpdated"
)

// NewProductCreatedEvent anuncia la creación de un producto.
func NewProductCreatedEvent(product *entity.Product) (shared.DomainEvent, error) {
	return shared.NewDomainEvent(AggregateType, ProductCreatedEventType, product)
}

// NewProductUpdatedEvent anuncia la actualización de un producto.
func NewProductUpdatedEvent(product *entity.Product) (shared.DomainEvent, error) {
	return shared.NewDomainEvent(AggregateType, ProductUpdatedEventType, product)
}
