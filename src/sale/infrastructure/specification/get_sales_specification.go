package specification

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
	domainSpec "sales/src/sale/domain/specification"
	shared "sales/src/shared/domain/specification"
)

// saleOrderingFields es la tabla de campos permitidos para ordenar ventas.
// Las columnas van calificadas con el alias de Sale porque la consulta base
// hace join contra Customer, Branch y SaleItem.
var saleOrderingFields = shared.AllowedOrderingFields{
	"SaleDate":       "s.SaleDate",
	"TotalSaleValue": "s.TotalSaleValue",
	"SaleNumber":     "s.SaleNumber",
	"Id":             "s.Id",
}

// GetSalesSpecification compila un contrato de ventas a SQL más parámetros.
// La consulta base fija el join de tres vías (Customer, Branch, SaleItem);
// el contrato no puede alterar esa forma.
type GetSalesSpecification struct {
	conditions []string
	params     []any
	orderBy    []string
	skip       *int
	take       *int
}

// NewGetSalesSpecification construye la especificación desde el contrato.
func NewGetSalesSpecification(contract domainSpec.GetSalesSpecificationContract) *GetSalesSpecification {
	s := &GetSalesSpecification{}
	s.withID(contract.ID)
	s.withCustomerID(contract.CustomerID)
	s.withBranchID(contract.BranchID)
	s.withSaleDateFrom(contract.SaleDateFrom)
	s.withSaleDateTo(contract.SaleDateTo)
	s.withSaleStatus(contract.SaleStatus)
	s.withMinTotalSaleValue(contract.MinTotalSaleValue)
	s.withMaxTotalSaleValue(contract.MaxTotalSaleValue)
	s.withOrdering(contract.OrderingFields)
	s.withPagination(contract.Skip, contract.Take)
	return s
}

func (s *GetSalesSpecification) withID(id *int64) {
	if id != nil {
		s.conditions = append(s.conditions, "s.Id = "+s.addParam(*id))
	}
}

func (s *GetSalesSpecification) withCustomerID(customerID *int64) {
	if customerID != nil {
		s.conditions = append(s.conditions, "s.CustomerId = "+s.addParam(*customerID))
	}
}

func (s *GetSalesSpecification) withBranchID(branchID *int64) {
	if branchID != nil {
		s.conditions = append(s.conditions, "s.BranchId = "+s.addParam(*branchID))
	}
}

func (s *GetSalesSpecification) withSaleDateFrom(saleDateFrom *time.Time) {
	if saleDateFrom != nil {
		s.conditions = append(s.conditions, "s.SaleDate >= "+s.addParam(*saleDateFrom))
	}
}

func (s *GetSalesSpecification) withSaleDateTo(saleDateTo *time.Time) {
	if saleDateTo != nil {
		s.conditions = append(s.conditions, "s.SaleDate <= "+s.addParam(*saleDateTo))
	}
}

func (s *GetSalesSpecification) withSaleStatus(saleStatus *entity.SaleStatus) {
	if saleStatus != nil {
		s.conditions = append(s.conditions, "s.SaleStatus = "+s.addParam(string(*saleStatus)))
	}
}

func (s *GetSalesSpecification) withMinTotalSaleValue(minTotal *decimal.Decimal) {
	if minTotal != nil {
		s.conditions = append(s.conditions, "s.TotalSaleValue >= "+s.addParam(*minTotal))
	}
}

func (s *GetSalesSpecification) withMaxTotalSaleValue(maxTotal *decimal.Decimal) {
	if maxTotal != nil {
		s.conditions = append(s.conditions, "s.TotalSaleValue <= "+s.addParam(*maxTotal))
	}
}

func (s *GetSalesSpecification) withOrdering(orderingFields []shared.OrderingField) {
	for _, field := range orderingFields {
		column, ok := saleOrderingFields.Resolve(field.FieldName)
		if !ok {
			continue
		}
		s.orderBy = append(s.orderBy, column+" "+shared.Direction(field.Ascending))
	}
}

func (s *GetSalesSpecification) withPagination(skip, take *int) {
	s.skip = skip
	s.take = take
}

func (s *GetSalesSpecification) addParam(value any) string {
	s.params = append(s.params, value)
	return "$" + strconv.Itoa(len(s.params))
}

// ToSQLQuery genera la consulta con el join fijo de tres vías. SaleItem va
// con LEFT JOIN: una venta sin items produce una fila con el componente de
// item en NULL, que el repositorio excluye de la colección.
func (s *GetSalesSpecification) ToSQLQuery() string {
	var query strings.Builder
	query.WriteString("SELECT s.Id, s.SaleNumber, s.SaleDate, s.CustomerId, s.BranchId, s.TotalSaleValue, s.SaleStatus,\n")
	query.WriteString("       c.Id, c.CustomerName,\n")
	query.WriteString("       b.Id, b.BranchName,\n")
	query.WriteString("       si.Id, si.SaleId, si.ProductId, si.Quantity, si.UnitPrice, si.Discount\n")
	query.WriteString("FROM Sale s\n")
	query.WriteString("INNER JOIN Customer c ON s.CustomerId = c.Id\n")
	query.WriteString("INNER JOIN Branch b ON s.BranchId = b.Id\n")
	query.WriteString("LEFT JOIN SaleItem si ON s.Id = si.SaleId\n")

	if len(s.conditions) > 0 {
		query.WriteString("WHERE " + strings.Join(s.conditions, " AND ") + "\n")
	}

	if len(s.orderBy) > 0 {
		query.WriteString("ORDER BY " + strings.Join(s.orderBy, ", ") + "\n")
	}

	if s.skip != nil || s.take != nil {
		if len(s.orderBy) == 0 {
			query.WriteString("ORDER BY s.Id\n")
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
func (s *GetSalesSpecification) Parameters() []any {
	return s.params
}
