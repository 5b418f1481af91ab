package port

import (
	"context"

	"sales/src/product/domain/entity"
	shared "sales/src/shared/domain/specification"
)

// ProductRepository define la persistencia de productos.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Insert(ctx context.Context, product *entity.Product) (int64, error)
	Update(ctx context.Context, product *entity.Product) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	QueryBySpecification(ctx context.Context, spec shared.Specification) ([]*entity.Product, error)
}
