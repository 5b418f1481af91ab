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

// CreateSaleUseCase crea una venta con sus items y anuncia SaleCreated.
type CreateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher sharedEvent.Publisher
}

// NewCreateSaleUseCase crea una nueva instancia.
func NewCreateSaleUseCase(saleRepo port.SaleRepository, publisher sharedEvent.Publisher) *CreateSaleUseCase {
	return &CreateSaleUseCase{saleRepo: saleRepo, publisher: publisher}
}

// Execute arma el aggregate, lo persiste atómicamente y publica el evento.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*entity.Sale, error) {
	items, err := request.ToSaleItems(req.Items)
	if err != nil {
		return nil, err
	}

	sale, err := entity.NewSale(req.SaleDate, req.CustomerID, req.BranchID, items)
	if err != nil {
		return nil, err
	}

	if _, err := uc.saleRepo.Insert(ctx, sale); err != nil {
		return nil, err
	}
	log.Printf("Sale inserted successfully with Id: %d", sale.ID)

	if e, err := saleEvent.NewSaleCreatedEvent(sale); err != nil {
		log.Printf("Error building SaleCreated event: %v", err)
	} else if err := uc.publisher.Publish(ctx, e); err != nil {
		log.Printf("Error publishing SaleCreated event: %v", err)
	}

	return sale, nil
}
