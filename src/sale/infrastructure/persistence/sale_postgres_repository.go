package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
	"sales/src/sale/domain/port"
	sharedSpec "sales/src/shared/domain/specification"
	shared "sales/src/shared/infrastructure/persistence"
)

// saleMapper define el mapeo columna-a-campo de la fila Sale. Customer,
// Branch e Items no son columnas: se rehidratan aparte.
type saleMapper struct{}

func (saleMapper) Table() string { return "Sale" }

func (saleMapper) Columns() []string {
	return []string{"SaleNumber", "SaleDate", "CustomerId", "BranchId", "TotalSaleValue", "SaleStatus"}
}

func (saleMapper) Values(s *entity.Sale) []any {
	return []any{s.SaleNumber, s.SaleDate, s.CustomerID, s.BranchID, s.TotalSaleValue, string(s.SaleStatus)}
}

func (saleMapper) ScanRow(row shared.RowScanner) (*entity.Sale, error) {
	sale := &entity.Sale{}
	var status string
	err := row.Scan(&sale.ID, &sale.SaleNumber, &sale.SaleDate, &sale.CustomerID,
		&sale.BranchID, &sale.TotalSaleValue, &status)
	if err != nil {
		return nil, err
	}
	sale.SaleStatus = entity.SaleStatus(status)
	return sale, nil
}

func (saleMapper) ID(s *entity.Sale) int64 { return s.ID }

func (saleMapper) SetID(s *entity.Sale, id int64) { s.ID = id }

// SalePostgresRepository implementa SaleRepository extendiendo el
// repositorio genérico con el join de tres vías y las escrituras
// transaccionales que mantienen consistente el aggregate.
type SalePostgresRepository struct {
	*shared.SQLRepository[*entity.Sale]
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio.
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		SQLRepository: shared.NewSQLRepository[*entity.Sale](db, saleMapper{}),
		db:            db,
	}
}

// GetByID rehidrata la venta con su colección ordenada de items.
func (r *SalePostgresRepository) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := r.SQLRepository.GetByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}

	queryItems := `
		SELECT Id, SaleId, ProductId, Quantity, UnitPrice, Discount
		FROM SaleItem
		WHERE SaleId = $1
		ORDER BY Id
	`

	rows, err := r.db.QueryContext(ctx, queryItems, id)
	if err != nil {
		return nil, fmt.Errorf("error finding sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Discount)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		// TotalItemValue es derivado, no se almacena.
		item.RecalculateTotal()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	sale.Items = items
	return sale, nil
}

// QueryWithJoin ejecuta la especificación con join y reconstruye el grafo:
// N filas por venta con N items se pliegan en una sola venta. El acumulador
// está indexado por Id de venta para que el orden de filas de la base no
// fragmente una venta en varias entradas del resultado.
func (r *SalePostgresRepository) QueryWithJoin(ctx context.Context, spec sharedSpec.Specification) ([]*entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, spec.ToSQLQuery(), spec.Parameters()...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales with join: %w", err)
	}
	defer rows.Close()

	salesByID := make(map[int64]*entity.Sale)
	var order []int64

	for rows.Next() {
		var (
			sale     entity.Sale
			status   string
			customer entity.Customer
			branch   entity.Branch

			itemID        sql.NullInt64
			itemSaleID    sql.NullInt64
			itemProductID sql.NullInt64
			itemQuantity  sql.NullInt64
			itemUnitPrice decimal.NullDecimal
			itemDiscount  decimal.NullDecimal
		)

		err := rows.Scan(
			&sale.ID, &sale.SaleNumber, &sale.SaleDate, &sale.CustomerID,
			&sale.BranchID, &sale.TotalSaleValue, &status,
			&customer.ID, &customer.CustomerName,
			&branch.ID, &branch.BranchName,
			&itemID, &itemSaleID, &itemProductID, &itemQuantity, &itemUnitPrice, &itemDiscount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale row: %w", err)
		}

		entry, ok := salesByID[sale.ID]
		if !ok {
			sale.SaleStatus = entity.SaleStatus(status)
			sale.Customer = &customer
			sale.Branch = &branch
			sale.Items = []entity.SaleItem{}
			entry = &sale
			salesByID[sale.ID] = entry
			order = append(order, sale.ID)
		}

		// Una venta sin items degrada a una fila con item NULL: se
		// excluye de la colección en lugar de agregar una entrada vacía.
		if itemID.Valid {
			item := entity.SaleItem{
				ID:        itemID.Int64,
				SaleID:    itemSaleID.Int64,
				ProductID: itemProductID.Int64,
				Quantity:  int(itemQuantity.Int64),
				UnitPrice: itemUnitPrice.Decimal,
				Discount:  itemDiscount.Decimal,
			}
			item.RecalculateTotal()
			entry.Items = append(entry.Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	sales := make([]*entity.Sale, 0, len(order))
	for _, id := range order {
		sales = append(sales, salesByID[id])
	}
	return sales, nil
}

const insertSaleQuery = `
	INSERT INTO Sale (SaleNumber, SaleDate, CustomerId, BranchId, TotalSaleValue, SaleStatus)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING Id
`

const insertSaleItemQuery = `
	INSERT INTO SaleItem (SaleId, ProductId, Quantity, UnitPrice, Discount)
	VALUES ($1, $2, $3, $4, $5)
`

// Insert persiste la venta y sus items de forma atómica: primero la fila
// padre para obtener su Id generado, luego cada item ya estampado con ese
// Id, todo dentro de la misma transacción.
func (r *SalePostgresRepository) Insert(ctx context.Context, sale *entity.Sale) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	// El rollback diferido cubre todo camino de salida, cancelación incluida;
	// es inocuo después de un commit exitoso.
	defer tx.Rollback()

	var saleID int64
	err = tx.QueryRowContext(ctx, insertSaleQuery,
		sale.SaleNumber,
		sale.SaleDate,
		sale.CustomerID,
		sale.BranchID,
		sale.TotalSaleValue,
		string(sale.SaleStatus),
	).Scan(&saleID)
	if err != nil {
		return 0, fmt.Errorf("error inserting sale: %w", err)
	}

	for i := range sale.Items {
		sale.Items[i].SaleID = saleID

		_, err = tx.ExecContext(ctx, insertSaleItemQuery,
			sale.Items[i].SaleID,
			sale.Items[i].ProductID,
			sale.Items[i].Quantity,
			sale.Items[i].UnitPrice,
			sale.Items[i].Discount,
		)
		if err != nil {
			return 0, fmt.Errorf("error inserting sale item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing transaction: %w", err)
	}

	sale.ID = saleID
	return saleID, nil
}

const updateSaleQuery = `
	UPDATE Sale
	SET SaleNumber = $1, SaleDate = $2, CustomerId = $3, BranchId = $4, TotalSaleValue = $5, SaleStatus = $6
	WHERE Id = $7
`

// Update actualiza la fila de la venta y reemplaza la colección completa de
// items: borra las filas existentes y reinserta la lista en memoria. No hay
// diff; el caller siempre entrega la lista deseada completa.
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateSaleQuery,
		sale.SaleNumber,
		sale.SaleDate,
		sale.CustomerID,
		sale.BranchID,
		sale.TotalSaleValue,
		string(sale.SaleStatus),
		sale.ID,
	)
	if err != nil {
		return false, fmt.Errorf("error updating sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows for sale: %w", err)
	}
	if affected == 0 {
		// Sin fila padre no hay aggregate que reemplazar.
		return false, nil
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM SaleItem WHERE SaleId = $1", sale.ID)
	if err != nil {
		return false, fmt.Errorf("error deleting sale items: %w", err)
	}

	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID

		_, err = tx.ExecContext(ctx, insertSaleItemQuery,
			sale.Items[i].SaleID,
			sale.Items[i].ProductID,
			sale.Items[i].Quantity,
			sale.Items[i].UnitPrice,
			sale.Items[i].Discount,
		)
		if err != nil {
			return false, fmt.Errorf("error inserting sale item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	return true, nil
}
