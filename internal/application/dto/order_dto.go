package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// MesaRequest body para seleccionar mesa.
type MesaRequest struct {
	MesaID int64 `json:"mesa_id"`
}

// ItemRequest body para agregar un producto a la comanda.
type ItemRequest struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int64           `json:"cantidad"`
}

// CantidadRequest body para fijar la cantidad de una línea.
type CantidadRequest struct {
	Cantidad int64 `json:"cantidad"`
}

// ComandaResponse comanda en curso con su total calculado.
type ComandaResponse struct {
	Items []entity.OrderLine `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Mesa  *int64             `json:"mesa,omitempty"`
}

// PedidoPendiente resumen de un pedido abierto, tal como lo lista el servicio remoto.
type PedidoPendiente struct {
	ID     int64           `json:"id"`
	Mesa   int64           `json:"mesa"`
	Estado string          `json:"estado"`
	Actor  string          `json:"mesera,omitempty"`
	Total  decimal.Decimal `json:"total"`
}
