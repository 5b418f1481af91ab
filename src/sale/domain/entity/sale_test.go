package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID int64, quantity int, unitPrice, discount int64) SaleItem {
	t.Helper()
	item, err := NewSaleItem(productID, quantity, decimal.NewFromInt(unitPrice), decimal.NewFromInt(discount))
	require.NoError(t, err)
	return *item
}

func TestNewSaleItemComputesTotal(t *testing.T) {
	// 3 * 100 - 50 = 250
	item := mustItem(t, 1, 3, 100, 50)
	assert.True(t, item.TotalItemValue.Equal(decimal.NewFromInt(250)))
}

func TestNewSaleItemValidation(t *testing.T) {
	tests := []struct {
		name      string
		productID int64
		quantity  int
		unitPrice decimal.Decimal
		discount  decimal.Decimal
		wantErr   error
	}{
		{"missing product", 0, 1, decimal.NewFromInt(10), decimal.Zero, ErrProductIDRequired},
		{"zero quantity", 1, 0, decimal.NewFromInt(10), decimal.Zero, ErrInvalidQuantity},
		{"negative quantity", 1, -2, decimal.NewFromInt(10), decimal.Zero, ErrInvalidQuantity},
		{"negative unit price", 1, 1, decimal.NewFromInt(-10), decimal.Zero, ErrInvalidUnitPrice},
		{"negative discount", 1, 1, decimal.NewFromInt(10), decimal.NewFromInt(-5), ErrInvalidDiscount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSaleItem(tt.productID, tt.quantity, tt.unitPrice, tt.discount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaleItemRecalculateTotalAfterMutation(t *testing.T) {
	item := mustItem(t, 1, 2, 100, 0)
	require.True(t, item.TotalItemValue.Equal(decimal.NewFromInt(200)))

	item.Quantity = 5
	item.RecalculateTotal()
	assert.True(t, item.TotalItemValue.Equal(decimal.NewFromInt(500)))
}

func TestNewSale(t *testing.T) {
	saleDate := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	items := []SaleItem{
		mustItem(t, 1, 3, 100, 50), // 250
		mustItem(t, 2, 1, 80, 0),   // 80
	}

	sale, err := NewSale(saleDate, 9, 3, items)
	require.NoError(t, err)

	assert.Equal(t, SaleStatusActive, sale.SaleStatus)
	assert.Equal(t, int64(9), sale.CustomerID)
	assert.Equal(t, int64(3), sale.BranchID)
	assert.Len(t, sale.SaleNumber, SaleNumberLength)
	assert.True(t, sale.TotalSaleValue.Equal(decimal.NewFromInt(330)))
}

func TestNewSaleValidation(t *testing.T) {
	saleDate := time.Now()
	items := []SaleItem{mustItem(t, 1, 1, 10, 0)}

	_, err := NewSale(saleDate, 0, 3, items)
	assert.ErrorIs(t, err, ErrCustomerIDRequired)

	_, err = NewSale(saleDate, 9, 0, items)
	assert.ErrorIs(t, err, ErrBranchIDRequired)

	_, err = NewSale(saleDate, 9, 3, nil)
	assert.ErrorIs(t, err, ErrSaleMustHaveItems)
}

func TestNewSaleNumberIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := NewSaleNumber()
		assert.Len(t, number, SaleNumberLength)
		assert.False(t, seen[number], "duplicate sale number %q", number)
		seen[number] = true
	}
}

func TestReplaceItemsRecalculatesTotal(t *testing.T) {
	sale, err := NewSale(time.Now(), 9, 3, []SaleItem{mustItem(t, 1, 1, 100, 0)})
	require.NoError(t, err)
	require.True(t, sale.TotalSaleValue.Equal(decimal.NewFromInt(100)))

	sale.ReplaceItems([]SaleItem{
		mustItem(t, 2, 2, 50, 0),  // 100
		mustItem(t, 3, 1, 30, 10), // 20
	})

	assert.Len(t, sale.Items, 2)
	assert.True(t, sale.TotalSaleValue.Equal(decimal.NewFromInt(120)))
}

func TestSaleStatusIsValid(t *testing.T) {
	assert.True(t, SaleStatusActive.IsValid())
	assert.True(t, SaleStatusCancelled.IsValid())
	assert.True(t, SaleStatusCompleted.IsValid())
	assert.False(t, SaleStatus("Archived").IsValid())
	assert.False(t, SaleStatus("").IsValid())
}
