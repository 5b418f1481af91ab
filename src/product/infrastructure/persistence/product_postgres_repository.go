package persistence

import (
	"context"
	"database/sql"
	"errors"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	shared "sales/src/shared/infrastructure/persistence"
)

// productMapper define el mapeo columna-a-campo de Product.
type productMapper struct{}

func (productMapper) Table() string { return "Product" }

func (productMapper) Columns() []string {
	return []string{"ProductName", "UnitPrice"}
}

func (productMapper) Values(p *entity.Product) []any {
	return []any{p.ProductName, p.UnitPrice}
}

func (productMapper) ScanRow(row shared.RowScanner) (*entity.Product, error) {
	product := &entity.Product{}
	if err := row.Scan(&product.ID, &product.ProductName, &product.UnitPrice); err != nil {
		return nil, err
	}
	return product, nil
}

func (productMapper) ID(p *entity.Product) int64 { return p.ID }

func (productMapper) SetID(p *entity.Product, id int64) { p.ID = id }

// ProductPostgresRepository implementa ProductRepository sobre el
// repositorio genérico: CRUD de tabla única, sin transacciones.
type ProductPostgresRepository struct {
	*shared.SQLRepository[*entity.Product]
}

// NewProductPostgresRepository crea una nueva instancia del repositorio.
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		SQLRepository: shared.NewSQLRepository[*entity.Product](db, productMapper{}),
	}
}

// GetByID busca el producto por su Id.
func (r *ProductPostgresRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := r.SQLRepository.GetByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, entity.ErrProductNotFound
	}
	return product, err
}
