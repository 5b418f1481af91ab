package response

import (
	"github.com/shopspring/decimal"

	"sales/src/product/domain/entity"
)

// ProductResponse es la vista HTTP de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// FromEntity convierte la entidad a su respuesta.
func FromEntity(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		ProductName: product.ProductName,
		UnitPrice:   product.UnitPrice,
	}
}

// FromEntities convierte una lista de entidades a respuestas.
func FromEntities(products []*entity.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, FromEntity(product))
	}
	return responses
}
