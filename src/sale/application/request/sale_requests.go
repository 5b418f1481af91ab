package request

import (
	"time"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
)

// SaleItemRequest es una línea de venta tal como llega en el cuerpo HTTP.
type SaleItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

func (r *SaleItemRequest) validate() []string {
	var messages []string

	if r.ProductID <= 0 {
		messages = append(messages, "Product ID must be greater than zero.")
	}
	if r.Quantity <= 0 {
		messages = append(messages, "Quantity must be greater than zero.")
	}
	if r.UnitPrice.LessThan(decimal.Zero) {
		messages = append(messages, "Unit price must be greater than or equal to zero.")
	}
	if r.Discount.LessThan(decimal.Zero) {
		messages = append(messages, "Discount must be greater than or equal to zero.")
	}

	return messages
}

// CreateSaleRequest es el cuerpo de POST /sales.
type CreateSaleRequest struct {
	SaleDate   time.Time         `json:"sale_date"`
	CustomerID int64             `json:"customer_id"`
	BranchID   int64             `json:"branch_id"`
	Items      []SaleItemRequest `json:"items"`
}

// Validate devuelve la lista de mensajes de validación; vacía significa válido.
func (r *CreateSaleRequest) Validate() []string {
	var messages []string

	if r.SaleDate.IsZero() {
		messages = append(messages, "Sale date is required.")
	}
	if r.CustomerID <= 0 {
		messages = append(messages, "Customer ID must be greater than zero.")
	}
	if r.BranchID <= 0 {
		messages = append(messages, "Branch ID must be greater than zero.")
	}
	if len(r.Items) == 0 {
		messages = append(messages, "At least one sale item is required.")
	}
	for _, item := range r.Items {
		messages = append(messages, item.validate()...)
	}

	return messages
}

// UpdateSaleRequest es el cuerpo de PUT /sales/:id. Los campos escalares son
// opcionales; Items, cuando viene, reemplaza la colección completa.
type UpdateSaleRequest struct {
	ID         int64              `json:"-"`
	SaleDate   *time.Time         `json:"sale_date"`
	CustomerID *int64             `json:"customer_id"`
	BranchID   *int64             `json:"branch_id"`
	SaleStatus *entity.SaleStatus `json:"sale_status"`
	Items      []SaleItemRequest  `json:"items"`
}

// Validate devuelve la lista de mensajes de validación; vacía significa válido.
func (r *UpdateSaleRequest) Validate() []string {
	var messages []string

	if r.ID <= 0 {
		messages = append(messages, "Sale ID must be greater than zero.")
	}
	if r.CustomerID != nil && *r.CustomerID <= 0 {
		messages = append(messages, "Customer ID must be greater than zero.")
	}
	if r.BranchID != nil && *r.BranchID <= 0 {
		messages = append(messages, "Branch ID must be greater than zero.")
	}
	if r.SaleStatus != nil && !r.SaleStatus.IsValid() {
		messages = append(messages, "Sale status is not valid.")
	}
	for _, item := range r.Items {
		messages = append(messages, item.validate()...)
	}

	return messages
}

// ToSaleItems convierte las líneas del request en entidades del dominio.
func ToSaleItems(requests []SaleItemRequest) ([]entity.SaleItem, error) {
	items := make([]entity.SaleItem, 0, len(requests))
	for _, r := range requests {
		item, err := entity.NewSaleItem(r.ProductID, r.Quantity, r.UnitPrice, r.Discount)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
