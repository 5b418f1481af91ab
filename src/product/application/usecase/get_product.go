package usecase

import (
	"context"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
)

// GetProductUseCase busca un producto por su Id.
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia.
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute devuelve el producto o ErrProductNotFound.
func (uc *GetProductUseCase) Execute(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}
