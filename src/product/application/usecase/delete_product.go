package usecase

import (
	"context"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
)

// DeleteProductUseCase elimina un producto por su Id. Borrado físico: el
// borrado lógico quedó afuera a propósito, para una iteración futura.
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia.
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute elimina el producto; ErrProductNotFound cuando no existe.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id int64) error {
	deleted, err := uc.productRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrProductNotFound
	}
	return nil
}
