package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo de la barra. El catálogo vive en el servicio
// remoto; el terminal solo lo consulta para armar comandas.
type Product struct {
	ID        int64           `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria,omitempty"`
}

// Table mesa del local.
type Table struct {
	ID        int64 `json:"id"`
	Numero    int   `json:"numero"`
	Capacidad int   `json:"capacidad"`
}
