package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product_name is required")
	ErrProductNameTooLong  = errors.New("product_name must have at most 100 characters")
	ErrInvalidUnitPrice    = errors.New("unit_price must be greater than or equal to 0")
	ErrProductNotFound     = errors.New("product not found")
)
