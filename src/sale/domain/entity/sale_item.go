package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de venta. No existe sin su Sale padre.
type SaleItem struct {
	ID             int64           `json:"id"`
	SaleID         int64           `json:"sale_id"`
	ProductID      int64           `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Discount       decimal.Decimal `json:"discount"`
	TotalItemValue decimal.Decimal `json:"total_item_value"`
}

// NewSaleItem crea una línea de venta calculando su total una sola vez.
// Quien mute Quantity, UnitPrice o Discount directamente debe invocar
// RecalculateTotal: el total no se deriva de forma perezosa.
func NewSaleItem(productID int64, quantity int, unitPrice, discount decimal.Decimal) (*SaleItem, error) {
	if productID <= 0 {
		return nil, ErrProductIDRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidUnitPrice
	}
	if discount.LessThan(decimal.Zero) {
		return nil, ErrInvalidDiscount
	}

	item := &SaleItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Discount:  discount,
	}
	item.RecalculateTotal()

	return item, nil
}

// RecalculateTotal recalcula TotalItemValue = Quantity*UnitPrice - Discount.
func (i *SaleItem) RecalculateTotal() {
	i.TotalItemValue = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}
