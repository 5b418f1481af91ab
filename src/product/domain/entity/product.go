package entity

import "github.com/shopspring/decimal"

// MaxProductNameLength es el límite de la columna ProductName.
const MaxProductNameLength = 100

// Product representa un producto del catálogo de ventas.
type Product struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// NewProduct crea un producto validando sus invariantes básicos.
func NewProduct(productName string, unitPrice decimal.Decimal) (*Product, error) {
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if len(productName) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidUnitPrice
	}

	return &Product{
		ProductName: productName,
		UnitPrice:   unitPrice,
	}, nil
}
