package port

import (
	"context"

	"sales/src/sale/domain/entity"
)

// CustomerRepository expone las lecturas sobre clientes.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}

// BranchRepository expone las lecturas sobre sucursales.
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Branch, error)
	List(ctx context.Context) ([]*entity.Branch, error)
}
