package port

import (
	"context"

	"sales/src/sale/domain/entity"
	shared "sales/src/shared/domain/specification"
)

// SaleRepository define la persistencia del aggregate Sale: la venta y sus
// items se escriben y se leen como una unidad consistente.
type SaleRepository interface {
	// GetByID rehidrata la venta con sus items, sin las referencias
	// denormalizadas a Customer/Branch.
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)

	// QueryWithJoin ejecuta la especificación con join de tres vías y
	// reconstruye el grafo de objetos desde el result set plano.
	QueryWithJoin(ctx context.Context, spec shared.Specification) ([]*entity.Sale, error)

	// Insert persiste la venta y sus items en una única transacción.
	Insert(ctx context.Context, sale *entity.Sale) (int64, error)

	// Update actualiza la venta y reemplaza por completo sus items en
	// una única transacción. Devuelve false si la venta no existe.
	Update(ctx context.Context, sale *entity.Sale) (bool, error)
}
