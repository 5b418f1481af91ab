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

// CreateProductUseCase crea un producto y anuncia ProductCreated.
type CreateProductUseCase struct {
	productRepo port.ProductRepository
	publisher   sharedEvent.Publisher
}

// NewCreateProductUseCase crea una nueva instancia.
func NewCreateProductUseCase(productRepo port.ProductRepository, publisher sharedEvent.Publisher) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, publisher: publisher}
}

// Execute construye la entidad, la persiste y publica el evento. La
// publicación es fire-and-forget: su falla se loguea, nunca aborta el comando.
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.ProductName, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	if _, err := uc.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}

	if e, err := productEvent.NewProductCreatedEvent(product); err != nil {
		log.Printf("Error building ProductCreated event: %v", err)
	} else if err := uc.publisher.Publish(ctx, e); err != nil {
		log.Printf("Error publishing ProductCreated event: %v", err)
	}

	return product, nil
}
