package entity

// Branch es la sucursal donde se registró la venta. Referencia de solo
// lectura, igual que Customer.
type Branch struct {
	ID         int64  `json:"id"`
	BranchName string `json:"branch_name"`
}
