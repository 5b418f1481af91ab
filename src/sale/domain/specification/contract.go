package specification

import (
	"time"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
	shared "sales/src/shared/domain/specification"
)

// GetSalesSpecificationContract describe los filtros, el ordenamiento y la
// paginación de una búsqueda de ventas. Todos los filtros son opcionales.
type GetSalesSpecificationContract struct {
	ID                *int64
	CustomerID        *int64
	BranchID          *int64
	SaleDateFrom      *time.Time
	SaleDateTo        *time.Time
	SaleStatus        *entity.SaleStatus
	MinTotalSaleValue *decimal.Decimal
	MaxTotalSaleValue *decimal.Decimal

	Skip *int
	Take *int

	OrderingFields []shared.OrderingField
}
