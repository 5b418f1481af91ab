package entity

// Customer es referenciado por las ventas pero no pertenece al aggregate:
// muchas ventas apuntan al mismo cliente.
type Customer struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
}
