package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/catalog"
)

// CatalogHandler passthrough del catálogo remoto (productos y mesas).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products godoc
// @Summary      Productos vendibles
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	list, err := h.uc.Products(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Tables godoc
// @Summary      Mesas del local
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entity.Table
// @Router       /api/tables [get]
func (h *CatalogHandler) Tables(c *fiber.Ctx) error {
	list, err := h.uc.Tables(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
