package response

import (
	"time"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
)

// SaleItemResponse es la vista HTTP de una línea de venta.
type SaleItemResponse struct {
	ID             int64           `json:"id"`
	ProductID      int64           `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Discount       decimal.Decimal `json:"discount"`
	TotalItemValue decimal.Decimal `json:"total_item_value"`
}

// SaleResponse es la vista HTTP de una venta con sus referencias
// denormalizadas, cuando la consulta las trajo.
type SaleResponse struct {
	ID             int64              `json:"id"`
	SaleNumber     string             `json:"sale_number"`
	SaleDate       time.Time          `json:"sale_date"`
	CustomerID     int64              `json:"customer_id"`
	CustomerName   string             `json:"customer_name,omitempty"`
	BranchID       int64              `json:"branch_id"`
	BranchName     string             `json:"branch_name,omitempty"`
	TotalSaleValue decimal.Decimal    `json:"total_sale_value"`
	SaleStatus     entity.SaleStatus  `json:"sale_status"`
	Items          []SaleItemResponse `json:"items"`
}

// FromEntity convierte la entidad a su respuesta.
func FromEntity(sale *entity.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:             sale.ID,
		SaleNumber:     sale.SaleNumber,
		SaleDate:       sale.SaleDate,
		CustomerID:     sale.CustomerID,
		BranchID:       sale.BranchID,
		TotalSaleValue: sale.TotalSaleValue,
		SaleStatus:     sale.SaleStatus,
		Items:          make([]SaleItemResponse, 0, len(sale.Items)),
	}

	if sale.Customer != nil {
		resp.CustomerName = sale.Customer.CustomerName
	}
	if sale.Branch != nil {
		resp.BranchName = sale.Branch.BranchName
	}

	for _, item := range sale.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Discount:       item.Discount,
			TotalItemValue: item.TotalItemValue,
		})
	}

	return resp
}

// FromEntities convierte una lista de entidades a respuestas.
func FromEntities(sales []*entity.Sale) []*SaleResponse {
	responses := make([]*SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, FromEntity(sale))
	}
	return responses
}
