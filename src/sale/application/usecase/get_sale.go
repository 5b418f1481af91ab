package usecase

import (
	"context"

	"sales/src/sale/domain/entity"
	"sales/src/sale/domain/port"
	domainSpec "sales/src/sale/domain/specification"
	infraSpec "sales/src/sale/infrastructure/specification"
)

// GetSaleUseCase busca una venta por Id a través del camino de lectura con
// join, para devolverla con sus referencias denormalizadas.
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia.
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute devuelve la venta o ErrSaleNotFound.
func (uc *GetSaleUseCase) Execute(ctx context.Context, id int64) (*entity.Sale, error) {
	contract := domainSpec.GetSalesSpecificationContract{ID: &id}
	spec := infraSpec.NewGetSalesSpecification(contract)

	sales, err := uc.saleRepo.QueryWithJoin(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, entity.ErrSaleNotFound
	}

	return sales[0], nil
}
