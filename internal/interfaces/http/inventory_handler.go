package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/inventory"
)

// InventoryHandler maneja el registro de movimientos de inventario. El body
// llega con forma variable (las vistas viejas usan otros nombres de campo);
// la normalización decide si es un comando válido.
type InventoryHandler struct {
	uc      *inventory.RegisterUseCase
	refresh func(context.Context)
}

// NewInventoryHandler construye el handler. refresh es el callback de refresco
// de stock que se invoca tras un registro exitoso (puede ser nil).
func NewInventoryHandler(uc *inventory.RegisterUseCase, refresh func(context.Context)) *InventoryHandler {
	return &InventoryHandler{uc: uc, refresh: refresh}
}

// RegisterMovement godoc
// @Summary      Registrar un movimiento de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]any  true  "producto/producto_id/..., tipo/tipoMovimiento, cantidad/qty/amount, motivo, usuario"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	raw := map[string]any{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cmd, err := h.uc.Register(c.Context(), raw, h.refresh)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"movimiento": cmd.ID,
		"tipo":       cmd.Kind,
	})
}
