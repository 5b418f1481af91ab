package usecase

import (
	"context"
	"log"

	"sales/src/product/application/request"
	"sales/src/product/domain/entity"
	productEvent "sales/src/product/domain/event"
	"sales/src/product/domain/port"
	sharedEvent "sales/src/shared/domain/event"
)

// UpdateProductUseCase aplica una actualización parcial sobre un producto.
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
	publisher   sharedEvent.Publisher
}

// NewUpdateProductUseCase crea una nueva instancia.
func NewUpdateProductUseCase(productRepo port.ProductRepository, publisher sharedEvent.Publisher) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo, publisher: publisher}
}

// Execute busca el producto, aplica los campos presentes y lo persiste.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, req *request.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}

	updated, err := uc.productRepo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, entity.ErrProductNotFound
	}

	if e, err := productEvent.NewProductUpdatedEvent(product); err != nil {
		log.Printf("Error building ProductUpdated event: %v", err)
	} else if err := uc.publisher.Publish(ctx, e); err != nil {
		log.Printf("Error publishing ProductUpdated event: %v", err)
	}

	return product, nil
}
