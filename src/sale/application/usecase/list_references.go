package usecase

import (
	"context"

	"sales/src/sale/domain/entity"
	"sales/src/sale/domain/port"
)

// ListCustomersUseCase lista los clientes disponibles para asociar a ventas.
type ListCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewListCustomersUseCase crea una nueva instancia.
func NewListCustomersUseCase(customerRepo port.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute devuelve todos los clientes.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx)
}

// ListBranchesUseCase lista las sucursales disponibles.
type ListBranchesUseCase struct {
	branchRepo port.BranchRepository
}

// NewListBranchesUseCase crea una nueva instancia.
func NewListBranchesUseCase(branchRepo port.BranchRepository) *ListBranchesUseCase {
	return &ListBranchesUseCase{branchRepo: branchRepo}
}

// Execute devuelve todas las sucursales.
func (uc *ListBranchesUseCase) Execute(ctx context.Context) ([]*entity.Branch, error) {
	return uc.branchRepo.List(ctx)
}
