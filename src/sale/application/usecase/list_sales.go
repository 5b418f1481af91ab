package usecase

import (
	"context"
	"log"

	"sales/src/sale/domain/entity"
	"sales/src/sale/domain/port"
	domainSpec "sales/src/sale/domain/specification"
	infraSpec "sales/src/sale/infrastructure/specification"
)

// ListSalesUseCase compila el contrato de búsqueda y consulta ventas con
// sus items y referencias.
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia.
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute construye la especificación desde el contrato y la ejecuta.
func (uc *ListSalesUseCase) Execute(ctx context.Context, contract domainSpec.GetSalesSpecificationContract) ([]*entity.Sale, error) {
	spec := infraSpec.NewGetSalesSpecification(contract)

	sales, err := uc.saleRepo.QueryWithJoin(ctx, spec)
	if err != nil {
		return nil, err
	}

	log.Printf("Sales retrieved by specification: %d", len(sales))
	return sales, nil
}
