package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus representa el estado de una venta.
type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "Active"
	SaleStatusCancelled SaleStatus = "Cancelled"
	SaleStatusCompleted SaleStatus = "Completed"
)

// IsValid indica si el valor corresponde a un estado conocido.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusActive, SaleStatusCancelled, SaleStatusCompleted:
		return true
	}
	return false
}

// SaleNumberLength es el largo máximo de la columna SaleNumber.
const SaleNumberLength = 20

// Sale representa una venta (Aggregate Root). Customer y Branch son
// referencias de solo lectura: las pueblan las consultas con join y
// nunca se escriben de vuelta.
type Sale struct {
	ID             int64           `json:"id"`
	SaleNumber     string          `json:"sale_number"`
	SaleDate       time.Time       `json:"sale_date"`
	CustomerID     int64           `json:"customer_id"`
	BranchID       int64           `json:"branch_id"`
	TotalSaleValue decimal.Decimal `json:"total_sale_value"`
	SaleStatus     SaleStatus      `json:"sale_status"`

	Customer *Customer  `json:"customer,omitempty"`
	Branch   *Branch    `json:"branch,omitempty"`
	Items    []SaleItem `json:"items"`
}

// NewSale crea una venta activa con sus items, calculando el total.
func NewSale(saleDate time.Time, customerID, branchID int64, items []SaleItem) (*Sale, error) {
	if customerID <= 0 {
		return nil, ErrCustomerIDRequired
	}
	if branchID <= 0 {
		return nil, ErrBranchIDRequired
	}
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	sale := &Sale{
		SaleNumber: NewSaleNumber(),
		SaleDate:   saleDate,
		CustomerID: customerID,
		BranchID:   branchID,
		SaleStatus: SaleStatusActive,
		Items:      items,
	}
	sale.RecalculateTotal()

	return sale, nil
}

// NewSaleNumber genera el número legible de la venta a partir de un
// token aleatorio único, recortado al largo de la columna.
func NewSaleNumber() string {
	return uuid.NewString()[:SaleNumberLength]
}

// ReplaceItems reemplaza la colección completa de items y recalcula el total.
// La venta siempre recibe la lista deseada completa, nunca un delta.
func (s *Sale) ReplaceItems(items []SaleItem) {
	s.Items = items
	s.RecalculateTotal()
}

// RecalculateTotal recalcula TotalSaleValue como la suma de los items.
func (s *Sale) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.TotalItemValue)
	}
	s.TotalSaleValue = total
}
