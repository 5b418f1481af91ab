package specification

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainSpec "sales/src/product/domain/specification"
	shared "sales/src/shared/domain/specification"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

func TestGetProductsSpecificationEmptyContract(t *testing.T) {
	spec := NewGetProductsSpecification(domainSpec.GetProductsSpecificationContract{})

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "SELECT p.Id, p.ProductName, p.UnitPrice")
	assert.Contains(t, query, "FROM Product p")
	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "OFFSET")
	assert.Empty(t, spec.Parameters())
}

func TestGetProductsSpecificationFilters(t *testing.T) {
	tests := []struct {
		name       string
		contract   domainSpec.GetProductsSpecificationContract
		wantClause string
		wantParams []any
	}{
		{
			name:       "filter by id",
			contract:   domainSpec.GetProductsSpecificationContract{ID: int64Ptr(7)},
			wantClause: "WHERE p.Id = $1",
			wantParams: []any{int64(7)},
		},
		{
			name:       "filter by name wraps the term in wildcards",
			contract:   domainSpec.GetProductsSpecificationContract{ProductName: "Yerba"},
			wantClause: "WHERE p.ProductName LIKE $1",
			wantParams: []any{"%Yerba%"},
		},
		{
			name:       "filter by unit price",
			contract:   domainSpec.GetProductsSpecificationContract{UnitPrice: decimal.NewFromInt(150)},
			wantClause: "WHERE p.UnitPrice = $1",
			wantParams: []any{decimal.NewFromInt(150)},
		},
		{
			name:       "zero unit price means no filter",
			contract:   domainSpec.GetProductsSpecificationContract{ProductName: "Mate"},
			wantClause: "WHERE p.ProductName LIKE $1",
			wantParams: []any{"%Mate%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := NewGetProductsSpecification(tt.contract)
			assert.Contains(t, spec.ToSQLQuery(), tt.wantClause)
			assert.Equal(t, tt.wantParams, spec.Parameters())
		})
	}
}

func TestGetProductsSpecificationCombinedFilters(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{
		ProductName: "Yerba",
		UnitPrice:   decimal.NewFromInt(150),
	}

	spec := NewGetProductsSpecification(contract)

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "WHERE p.ProductName LIKE $1 AND p.UnitPrice = $2")
	assert.Equal(t, []any{"%Yerba%", decimal.NewFromInt(150)}, spec.Parameters())
}

func TestGetProductsSpecificationOrdering(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{
		OrderingFields: []shared.OrderingField{
			{FieldName: "ProductName", Ascending: true},
			{FieldName: "UnitPrice", Ascending: false},
		},
	}

	spec := NewGetProductsSpecification(contract)

	assert.Contains(t, spec.ToSQLQuery(), "ORDER BY p.ProductName ASC, p.UnitPrice DESC")
}

func TestGetProductsSpecificationDropsUnknownOrderingFields(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{
		OrderingFields: []shared.OrderingField{
			{FieldName: "NotAColumn; DROP TABLE Product", Ascending: true},
			{FieldName: "UnitPrice", Ascending: true},
		},
	}

	spec := NewGetProductsSpecification(contract)

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "ORDER BY p.UnitPrice ASC")
	assert.NotContains(t, query, "DROP TABLE")
}

func TestGetProductsSpecificationPagination(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{
		Skip: intPtr(20),
		Take: intPtr(10),
		OrderingFields: []shared.OrderingField{
			{FieldName: "ProductName", Ascending: true},
		},
	}

	spec := NewGetProductsSpecification(contract)

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "OFFSET 20 ROWS")
	assert.Contains(t, query, "FETCH NEXT 10 ROWS ONLY")
}

func TestGetProductsSpecificationPaginationWithoutOrderingUsesPK(t *testing.T) {
	spec := NewGetProductsSpecification(domainSpec.GetProductsSpecificationContract{
		Take: intPtr(5),
	})

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "ORDER BY p.Id")
	assert.Contains(t, query, "OFFSET 0 ROWS")
	assert.Contains(t, query, "FETCH NEXT 5 ROWS ONLY")
}

func TestGetProductsSpecificationTakeWithoutSkip(t *testing.T) {
	spec := NewGetProductsSpecification(domainSpec.GetProductsSpecificationContract{
		Skip: intPtr(30),
	})

	query := spec.ToSQLQuery()
	assert.Contains(t, query, "OFFSET 30 ROWS")
	assert.NotContains(t, query, "FETCH NEXT")
}

func TestGetProductsSpecificationIsRebuildable(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{ProductName: "Yerba"}

	first := NewGetProductsSpecification(contract)
	second := NewGetProductsSpecification(contract)

	assert.Equal(t, first.ToSQLQuery(), second.ToSQLQuery())
	assert.Equal(t, first.Parameters(), second.Parameters())
}

func TestGetProductsSpecificationParameterOrderMatchesPlaceholders(t *testing.T) {
	contract := domainSpec.GetProductsSpecificationContract{
		ID:          int64Ptr(3),
		ProductName: "Mate",
		UnitPrice:   decimal.NewFromInt(99),
	}

	spec := NewGetProductsSpecification(contract)

	query := spec.ToSQLQuery()
	for _, placeholder := range []string{"$1", "$2", "$3"} {
		assert.True(t, strings.Contains(query, placeholder), "missing placeholder %s", placeholder)
	}
	assert.Equal(t, []any{int64(3), "%Mate%", decimal.NewFromInt(99)}, spec.Parameters())
}
