package specification

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domainSpec "sales/src/product/domain/specification"
	shared "sales/src/shared/domain/specification"
)

// productOrderingFields es la tabla de campos permitidos para ordenar
// productos, mapeados a su columna calificada.
var productOrderingFields = shared.AllowedOrderingFields{
	"ProductName": "p.ProductName",
	"UnitPrice":   "p.UnitPrice",
	"Id":          "p.Id",
}

// GetProductsSpecification compila un contrato de productos a SQL más
// parámetros posicionales. Libre de efectos: se puede construir las veces
// que haga falta a partir del mismo contrato.
type GetProductsSpecification struct {
	conditions []string
	params     []any
	orderBy    []string
	skip       *int
	take       *int
}

// NewGetProductsSpecification construye la especificación desde el contrato.
func NewGetProductsSpecification(contract domainSpec.GetProductsSpecificationContract) *GetProductsSpecification {
	s := &GetProductsSpecification{}
	s.withID(contract.ID)
	s.withProductName(contract.ProductName)
	s.withUnitPrice(contract.UnitPrice)
	s.withOrdering(contract.OrderingFields)
	s.withPagination(contract.Skip, contract.Take)
	return s
}

func (s *GetProductsSpecification) withID(id *int64) {
	if id != nil {
		s.conditions = append(s.conditions, "p.Id = "+s.addParam(*id))
	}
}

func (s *GetProductsSpecification) withProductName(productName string) {
	if productName != "" {
		s.conditions = append(s.conditions, "p.ProductName LIKE "+s.addParam("%"+productName+"%"))
	}
}

func (s *GetProductsSpecification) withUnitPrice(unitPrice decimal.Decimal) {
	if unitPrice.GreaterThan(decimal.Zero) {
		s.conditions = append(s.conditions, "p.UnitPrice = "+s.addParam(unitPrice))
	}
}

func (s *GetProductsSpecification) withOrdering(orderingFields []shared.OrderingField) {
	for _, field := range orderingFields {
		column, ok := productOrderingFields.Resolve(field.FieldName)
		if !ok {
			// Campos desconocidos se descartan sin error: política permisiva.
			continue
		}
		s.orderBy = append(s.orderBy, column+" "+shared.Direction(field.Ascending))
	}
}

func (s *GetProductsSpecification) withPagination(skip, take *int) {
	s.skip = skip
	s.take = take
}

// addParam registra el valor y devuelve su placeholder posicional. La
// numeración por build hace imposible la colisión de parámetros.
func (s *GetProductsSpecification) addParam(value any) string {
	s.params = append(s.params, value)
	return "$" + strconv.Itoa(len(s.params))
}

// ToSQLQuery genera el SELECT completo con WHERE, ORDER BY y paginación.
func (s *GetProductsSpecification) ToSQLQuery() string {
	var query strings.Builder
	query.WriteString("SELECT p.Id, p.ProductName, p.UnitPrice\n")
	query.WriteString("FROM Product p\n")

	if len(s.conditions) > 0 {
		query.WriteString("WHERE " + strings.Join(s.conditions, " AND ") + "\n")
	}

	if len(s.orderBy) > 0 {
		query.WriteString("ORDER BY " + strings.Join(s.orderBy, ", ") + "\n")
	}

	if s.skip != nil || s.take != nil {
		// Paginar sin orden estable es comportamiento indefinido: se
		// inyecta la PK como orden de respaldo.
		if len(s.orderBy) == 0 {
			query.WriteString("ORDER BY p.Id\n")
		}

		skip := 0
		if s.skip != nil {
			skip = *s.skip
		}
		query.WriteString("OFFSET " + strconv.Itoa(skip) + " ROWS\n")

		if s.take != nil {
			query.WriteString("FETCH NEXT " + strconv.Itoa(*s.take) + " ROWS ONLY\n")
		}
	}

	return query.String()
}

// Parameters devuelve los valores en el orden de sus placeholders.
func (s *GetProductsSpecification) Parameters() []any {
	return s.params
}
