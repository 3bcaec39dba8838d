package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/domain"
)

// fail mapea errores de dominio a respuestas HTTP. Los fallos esperados llegan
// tipados desde los casos de uso; el detail de un ServerError se muestra tal
// cual cuando el servicio lo envía.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCredencialesInvalidas), errors.Is(err, domain.ErrCodigoIncorrecto):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH", Message: err.Error()})
	case errors.Is(err, domain.ErrSinSesion), errors.Is(err, domain.ErrSinPerfilPendiente):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SIN_SESION", Message: err.Error()})
	case errors.Is(err, domain.ErrRolDesconocido):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ROL_DESCONOCIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrMovimientoSinProducto):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOVIMIENTO_SIN_PRODUCTO", Message: err.Error()})
	case errors.Is(err, domain.ErrTipoMovimientoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TIPO_INVALIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrCantidadInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CANTIDAD_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrComandaVacia), errors.Is(err, domain.ErrSinMesa):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COMANDA_INCOMPLETA", Message: err.Error()})
	case errors.Is(err, domain.ErrLineaNoEncontrada):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LINEA_NO_ENCONTRADA", Message: err.Error()})
	case errors.Is(err, domain.ErrBackendNoDisponible):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BACKEND_NO_DISPONIBLE", Message: "servicio de pedidos no disponible, reintente"})
	}

	var srv *domain.ServerError
	if errors.As(err, &srv) {
		msg := srv.Detail
		if msg == "" {
			msg = "el servicio de pedidos rechazó la operación"
		}
		return c.Status(srv.Status).JSON(dto.ErrorResponse{Code: "SERVIDOR", Message: msg})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
