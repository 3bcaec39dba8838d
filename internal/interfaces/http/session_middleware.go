package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/domain/roles"
)

// RequireSession exige un actor confirmado en el terminal.
func RequireSession(m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.Confirmed() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SIN_SESION",
				Message: "seleccione un perfil o inicie sesión",
			})
		}
		return c.Next()
	}
}

// RequireModule exige que el rol de la sesión pueda ver el módulo dado.
// Debe usarse DESPUÉS de RequireSession.
func RequireModule(clave string, m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !roles.Allowed(entity.DefaultModules, clave, m.Role()) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULO_NO_PERMITIDO",
				Message: "el módulo '" + clave + "' no está disponible para su rol",
			})
		}
		return c.Next()
	}
}
