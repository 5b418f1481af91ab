package request

import (
	"github.com/shopspring/decimal"

	"sales/src/product/domain/entity"
)

// CreateProductRequest es el cuerpo de POST /products.
type CreateProductRequest struct {
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Validate devuelve la lista de mensajes de validación; vacía significa válido.
func (r *CreateProductRequest) Validate() []string {
	var messages []string

	if r.ProductName == "" {
		messages = append(messages, "Product name is required.")
	}
	if len(r.ProductName) > entity.MaxProductNameLength {
		messages = append(messages, "Product name must have at most 100 characters.")
	}
	if r.UnitPrice.LessThan(decimal.Zero) {
		messages = append(messages, "Unit price must be greater than or equal to zero.")
	}

	return messages
}

// UpdateProductRequest es el cuerpo de PUT /products/:id. Los campos son
// opcionales: solo se aplican los presentes.
type UpdateProductRequest struct {
	ID          int64            `json:"-"`
	ProductName *string          `json:"product_name"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// Validate devuelve la lista de mensajes de validación; vacía significa válido.
func (r *UpdateProductRequest) Validate() []string {
	var messages []string

	if r.ID <= 0 {
		messages = append(messages, "Product ID must be greater than zero.")
	}
	if r.ProductName != nil {
		if *r.ProductName == "" {
			messages = append(messages, "Product name is required.")
		}
		if len(*r.ProductName) > entity.MaxProductNameLength {
			messages = append(messages, "Product name must have at most 100 characters.")
		}
	}
	if r.UnitPrice != nil && r.UnitPrice.LessThan(decimal.Zero) {
		messages = append(messages, "Unit price must be greater than or equal to zero.")
	}

	return messages
}
