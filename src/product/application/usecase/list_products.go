package usecase

import (
	"context"
	"log"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	domainSpec "sales/src/product/domain/specification"
	infraSpec "sales/src/product/infrastructure/specification"
)

// ListProductsUseCase compila el contrato de búsqueda y consulta productos.
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia.
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute construye la especificación desde el contrato y la ejecuta.
func (uc *ListProductsUseCase) Execute(ctx context.Context, contract domainSpec.GetProductsSpecificationContract) ([]*entity.Product, error) {
	spec := infraSpec.NewGetProductsSpecification(contract)

	products, err := uc.productRepo.QueryBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}

	log.Printf("Products retrieved by specification: %d", len(products))
	return products, nil
}
