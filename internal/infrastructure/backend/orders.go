package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/order"
)

var _ order.OrderSubmitter = (*Client)(nil)
var _ order.OrderFeed = (*Client)(nil)

type productoPedido struct {
	Producto int64           `json:"producto"`
	Cantidad int64           `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

type crearPedidoRequest struct {
	Mesa        int64            `json:"mesa"`
	Estado      string           `json:"estado"`
	Productos   []productoPedido `json:"productos"`
	Mesera      string           `json:"mesera,omitempty"`
	Usuario     string           `json:"usuario,omitempty"`
	ForceAppend bool             `json:"force_append"`
}

// Submit POST /orders: crea un pedido o, con force_append, agrega los ítems al
// pedido abierto de la mesa.
func (c *Client) Submit(ctx context.Context, s order.Submission) error {
	in := crearPedidoRequest{
		Mesa:        s.Mesa,
		Estado:      s.Estado,
		Productos:   make([]productoPedido, 0, len(s.Lines)),
		Mesera:      s.Mesera,
		Usuario:     s.Usuario,
		ForceAppend: s.ForceAppend,
	}
	for _, l := range s.Lines {
		in.Productos = append(in.Productos, productoPedido{
			Producto: l.ProductoID,
			Cantidad: l.Cantidad,
			Precio:   l.Precio,
		})
	}
	return c.do(ctx, http.MethodPost, "/orders", in, nil)
}

// Pending GET /orders?estado=pendiente.
func (c *Client) Pending(ctx context.Context) ([]dto.PedidoPendiente, error) {
	var out []dto.PedidoPendiente
	if err := c.do(ctx, http.MethodGet, "/orders?estado=pendiente", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MineToday GET /orders?mesera=...&fecha=hoy.
func (c *Client) MineToday(ctx context.Context, actor string) ([]dto.PedidoPendiente, error) {
	var out []dto.PedidoPendiente
	path := "/orders?fecha=hoy&mesera=" + url.QueryEscape(actor)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dispatch POST /orders/{id}/despachar: marca el pedido como despachado por barra.
func (c *Client) Dispatch(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/despachar", id), nil, nil)
}
