package backend

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandas-api/internal/application/inventory"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

var _ inventory.MovementRegistrar = (*Client)(nil)

type movimientoRequest struct {
	Producto    int64           `json:"producto"`
	Tipo        string          `json:"tipo"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Descripcion string          `json:"descripcion,omitempty"`
	Usuario     string          `json:"usuario,omitempty"`
	ClienteUID  string          `json:"cliente_uid,omitempty"` // idempotencia ante reintentos
}

// Register POST /movements con el comando ya canónico.
func (c *Client) Register(ctx context.Context, cmd entity.MovementCommand) error {
	in := movimientoRequest{
		Producto:    cmd.ProductoID,
		Tipo:        cmd.Kind,
		Cantidad:    cmd.Cantidad,
		Descripcion: cmd.Motivo,
		Usuario:     cmd.Actor,
		ClienteUID:  cmd.ID,
	}
	return c.do(ctx, http.MethodPost, "/movements", in, nil)
}
