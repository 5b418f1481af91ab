package usecase

import (
	"context"
	"log"

	"sales/src/sale/application/request"
	"sales/src/sale/domain/entity"
	saleEvent "sales/src/sale/domain/event"
	"sales/src/sale/domain/port"
	sharedEvent "sales/src/shared/domain/event"
)

// UpdateSaleUseCase actualiza una venta. Cuando el request trae items, la
// colección se reemplaza completa y el total se recalcula.
type UpdateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher sharedEvent.Publisher
}

// NewUpdateSaleUseCase crea una nueva instancia.
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, publisher sharedEvent.Publisher) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{saleRepo: saleRepo, publisher: publisher}
}

// Execute busca la venta, aplica los campos presentes y la persiste.
// Publica SaleCancelled cuando la venta quedó cancelada, SaleUpdated si no.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, req *request.UpdateSaleRequest) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	if req.CustomerID != nil {
		sale.CustomerID = *req.CustomerID
	}
	if req.BranchID != nil {
		sale.BranchID = *req.BranchID
	}
	if req.SaleStatus != nil {
		sale.SaleStatus = *req.SaleStatus
	}

	if len(req.Items) > 0 {
		items, err := request.ToSaleItems(req.Items)
		if err != nil {
			return nil, err
		}
		sale.ReplaceItems(items)
	}

	updated, err := uc.saleRepo.Update(ctx, sale)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, entity.ErrSaleNotFound
	}

	if e, err := saleEvent.EventForUpdate(sale); err != nil {
		log.Printf("Error building sale update event: %v", err)
	} else if err := uc.publisher.Publish(ctx, e); err != nil {
		log.Printf("Error publishing %s event: %v", e.EventType, err)
	}

	return sale, nil
}
