package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/order"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// CartHandler maneja la comanda en curso y la selección de mesa.
type CartHandler struct {
	cart *order.Cart
	lock *order.TableLock
}

// NewCartHandler construye el handler de comanda.
func NewCartHandler(cart *order.Cart, lock *order.TableLock) *CartHandler {
	return &CartHandler{cart: cart, lock: lock}
}

func (h *CartHandler) comanda() dto.ComandaResponse {
	out := dto.ComandaResponse{Items: h.cart.Lines(), Total: h.cart.Total()}
	if mesa, ok := h.lock.Mesa(); ok {
		out.Mesa = &mesa
	}
	return out
}

// Get godoc
// @Summary      Comanda en curso con total calculado
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.ComandaResponse
// @Router       /api/comanda [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.comanda())
}

// AddItem godoc
// @Summary      Agregar un producto a la comanda (suma si ya existe la línea)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "producto_id, nombre, precio, cantidad"
// @Success      200   {object}  dto.ComandaResponse
// @Router       /api/comanda/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	qty := in.Cantidad
	if qty == 0 {
		qty = 1
	}
	h.cart.AddItem(c.Context(), entity.Product{ID: in.ProductoID, Nombre: in.Nombre, Precio: in.Precio}, qty)
	return c.JSON(h.comanda())
}

// UpdateQuantity godoc
// @Summary      Fijar la cantidad de una línea tal cual (no auto-elimina en 0)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "producto_id"
// @Param        body  body  dto.CantidadRequest  true  "cantidad"
// @Success      200   {object}  dto.ComandaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comanda/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cart.UpdateQuantity(c.Context(), int64(id), in.Cantidad); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.comanda())
}

// Decrement godoc
// @Summary      Restar 1 a una línea (la elimina al llegar a 0)
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "producto_id"
// @Success      200  {object}  dto.ComandaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comanda/items/{id}/decrement [post]
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.cart.Decrement(c.Context(), int64(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.comanda())
}

// RemoveItem godoc
// @Summary      Quitar una línea de la comanda
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "producto_id"
// @Success      200  {object}  dto.ComandaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comanda/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.cart.Remove(c.Context(), int64(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.comanda())
}

// Clear godoc
// @Summary      Vaciar la comanda y liberar la mesa
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.ComandaResponse
// @Router       /api/comanda [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.cart.Clear(c.Context())
	h.lock.Clear()
	return c.JSON(h.comanda())
}

// SelectTable godoc
// @Summary      Seleccionar mesa (se ignora mientras hay un pedido abierto)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MesaRequest  true  "mesa_id"
// @Success      200   {object}  map[string]any
// @Router       /api/comanda/mesa [post]
func (h *CartHandler) SelectTable(c *fiber.Ctx) error {
	var in dto.MesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	aplicado := h.lock.Select(in.MesaID)
	mesa, _ := h.lock.Mesa()
	return c.JSON(fiber.Map{"aplicado": aplicado, "mesa": mesa})
}
