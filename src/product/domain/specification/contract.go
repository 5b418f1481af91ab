package specification

import (
	"github.com/shopspring/decimal"

	shared "sales/src/shared/domain/specification"
)

// GetProductsSpecificationContract describe los filtros, el ordenamiento y
// la paginación de una búsqueda de productos. Objeto de valor inmutable:
// no tiene comportamiento, la validación vive en el builder.
type GetProductsSpecificationContract struct {
	ID          *int64
	ProductName string
	// UnitPrice usa la convención ">0 significa seteado": el cero
	// deja el filtro inactivo.
	UnitPrice decimal.Decimal

	Skip *int
	Take *int

	OrderingFields []shared.OrderingField
}
