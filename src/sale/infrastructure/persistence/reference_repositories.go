package persistence

import (
	"context"
	"database/sql"
	"errors"

	"sales/src/sale/domain/entity"
	"sales/src/sale/domain/port"
	shared "sales/src/shared/infrastructure/persistence"
)

type customerMapper struct{}

func (customerMapper) Table() string     { return "Customer" }
func (customerMapper) Columns() []string { return []string{"CustomerName"} }

func (customerMapper) Values(c *entity.Customer) []any {
	return []any{c.CustomerName}
}

func (customerMapper) ScanRow(row shared.RowScanner) (*entity.Customer, error) {
	customer := &entity.Customer{}
	if err := row.Scan(&customer.ID, &customer.CustomerName); err != nil {
		return nil, err
	}
	return customer, nil
}

func (customerMapper) ID(c *entity.Customer) int64        { return c.ID }
func (customerMapper) SetID(c *entity.Customer, id int64) { c.ID = id }

type branchMapper struct{}

func (branchMapper) Table() string     { return "Branch" }
func (branchMapper) Columns() []string { return []string{"BranchName"} }

func (branchMapper) Values(b *entity.Branch) []any {
	return []any{b.BranchName}
}

func (branchMapper) ScanRow(row shared.RowScanner) (*entity.Branch, error) {
	branch := &entity.Branch{}
	if err := row.Scan(&branch.ID, &branch.BranchName); err != nil {
		return nil, err
	}
	return branch, nil
}

func (branchMapper) ID(b *entity.Branch) int64        { return b.ID }
func (branchMapper) SetID(b *entity.Branch, id int64) { b.ID = id }

// listAllSpecification es la especificación fija de los listados de
// referencia: sin filtros, orden estable por nombre.
type listAllSpecification struct {
	query string
}

func (s listAllSpecification) ToSQLQuery() string { return s.query }
func (s listAllSpecification) Parameters() []any  { return nil }

// CustomerPostgresRepository implementa CustomerRepository sobre el
// repositorio genérico.
type CustomerPostgresRepository struct {
	*shared.SQLRepository[*entity.Customer]
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio.
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{
		SQLRepository: shared.NewSQLRepository[*entity.Customer](db, customerMapper{}),
	}
}

// GetByID busca el cliente por su Id.
func (r *CustomerPostgresRepository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := r.SQLRepository.GetByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, entity.ErrCustomerNotFound
	}
	return customer, err
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerPostgresRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	return r.QueryBySpecification(ctx, listAllSpecification{
		query: "SELECT c.Id, c.CustomerName FROM Customer c ORDER BY c.CustomerName ASC",
	})
}

// BranchPostgresRepository implementa BranchRepository sobre el
// repositorio genérico.
type BranchPostgresRepository struct {
	*shared.SQLRepository[*entity.Branch]
}

// NewBranchPostgresRepository crea una nueva instancia del repositorio.
func NewBranchPostgresRepository(db *sql.DB) port.BranchRepository {
	return &BranchPostgresRepository{
		SQLRepository: shared.NewSQLRepository[*entity.Branch](db, branchMapper{}),
	}
}

// GetByID busca la sucursal por su Id.
func (r *BranchPostgresRepository) GetByID(ctx context.Context, id int64) (*entity.Branch, error) {
	branch, err := r.SQLRepository.GetByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, entity.ErrBranchNotFound
	}
	return branch, err
}

// List devuelve todas las sucursales ordenadas por nombre.
func (r *BranchPostgresRepository) List(ctx context.Context) ([]*entity.Branch, error) {
	return r.QueryBySpecification(ctx, listAllSpecification{
		query: "SELECT b.Id, b.BranchName FROM Branch b ORDER BY b.BranchName ASC",
	})
}
