package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/order"
	"github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

const dispatchTimeout = 10 * time.Second

// Dispatcher despacho remoto de un pedido pendiente.
type Dispatcher interface {
	Dispatch(ctx context.Context, id int64) error
}

// OrderHandler maneja el envío de comandas y las vistas de pedidos abiertos.
type OrderHandler struct {
	finalize   *order.FinalizeUseCase
	board      *order.Board
	manager    *session.Manager
	dispatcher Dispatcher
	log        *logger.Logger
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(finalize *order.FinalizeUseCase, board *order.Board, manager *session.Manager, dispatcher Dispatcher, log *logger.Logger) *OrderHandler {
	return &OrderHandler{finalize: finalize, board: board, manager: manager, dispatcher: dispatcher, log: log}
}

// Finalize godoc
// @Summary      Enviar la comanda de la mesa seleccionada
// @Tags         orders
// @Produce      json
// @Success      201  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pedidos/finalizar [post]
func (h *OrderHandler) Finalize(c *fiber.Ctx) error {
	if err := h.finalize.Finalize(c.Context(), h.manager.Current()); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// Pending godoc
// @Summary      Pedidos pendientes (instantánea del sondeo de 30s)
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.PedidoPendiente
// @Router       /api/pedidos/pendientes [get]
func (h *OrderHandler) Pending(c *fiber.Ctx) error {
	return c.JSON(h.board.Pending())
}

// Mine godoc
// @Summary      Mis pedidos de hoy (instantánea del sondeo de 15s)
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.PedidoPendiente
// @Router       /api/pedidos/mios [get]
func (h *OrderHandler) Mine(c *fiber.Ctx) error {
	h.board.SetActor(h.manager.Current().ActorNombre())
	return c.JSON(h.board.Mine())
}

// Dispatch godoc
// @Summary      Despachar un pedido pendiente (barra)
// @Tags         orders
// @Produce      json
// @Param        id  path  int  true  "id del pedido"
// @Success      200  {object}  map[string]bool
// @Router       /api/pedidos/{id}/despachar [post]
//
// La lista local se poda de inmediato sin esperar al servicio; el siguiente
// sondeo periódico reconcilia si el despacho remoto falló.
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	h.board.Dispatch(int64(id))
	go func(id int64) {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := h.dispatcher.Dispatch(ctx, id); err != nil {
			h.log.Warn().Err(err).Int64("pedido", id).Msg("despacho remoto falló, el sondeo reconcilia")
		}
	}(int64(id))
	return c.JSON(fiber.Map{"success": true})
}
