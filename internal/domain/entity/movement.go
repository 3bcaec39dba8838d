package entity

import "github.com/shopspring/decimal"

// Kinds canónicos de movimiento de inventario.
const (
	MovementIn  = "in"  // entrada
	MovementOut = "out" // salida
)

// MovementCommand comando canónico de movimiento de inventario, resultado de
// normalizar una petición de forma arbitraria. Un comando siempre está completo
// y validado: nunca circula un movimiento a medio normalizar.
type MovementCommand struct {
	ID         string          // uuid generado en el terminal, clave de idempotencia
	ProductoID int64
	Kind       string // MovementIn | MovementOut
	Cantidad   decimal.Decimal
	Motivo     string
	Actor      string // "" si la petición no traía usuario
}
