package entity

import "github.com/shopspring/decimal"

// OrderLine línea de la comanda en curso. Única por ProductoID dentro de la
// comanda. Invariante: Cantidad >= 1; una línea que llegue a 0 se elimina
// (vía Decrement; UpdateQuantity fija el valor tal cual, ver order.Cart).
type OrderLine struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int64           `json:"cantidad"`
}

// Subtotal Precio × Cantidad.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(l.Cantidad))
}
