package entity

import "errors"

var (
	ErrCustomerIDRequired = errors.New("customer_id is required")
	ErrBranchIDRequired   = errors.New("branch_id is required")
	ErrSaleMustHaveItems  = errors.New("sale must have at least one item")
	ErrProductIDRequired  = errors.New("product_id is required")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrInvalidUnitPrice   = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidDiscount    = errors.New("discount must be greater than or equal to 0")
	ErrInvalidSaleStatus  = errors.New("sale_status is not a valid status")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrBranchNotFound     = errors.New("branch not found")
)
