package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/domain/roles"
)

// SessionHandler maneja la sesión del terminal y los perfiles de personal.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Current godoc
// @Summary      Sesión actual del terminal
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	s := h.manager.Current()
	return c.JSON(dto.SesionResponse{
		Actor:      s.ActorNombre(),
		Rol:        roles.Resolve(s),
		Confirmado: s.Confirmed,
	})
}

// Modules godoc
// @Summary      Módulos visibles para el rol de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {array}  entity.Module
// @Router       /api/session/modules [get]
func (h *SessionHandler) Modules(c *fiber.Ctx) error {
	mods := roles.FilterModules(entity.DefaultModules, h.manager.Role())
	if mods == nil {
		mods = []entity.Module{}
	}
	return c.JSON(mods)
}

// SelectProfile godoc
// @Summary      Elegir un perfil de personal (queda pendiente de código)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeleccionarPerfilRequest  true  "perfil_id"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/session/perfil [post]
func (h *SessionHandler) SelectProfile(c *fiber.Ctx) error {
	var in dto.SeleccionarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	perfiles, err := h.manager.ListProfiles(c.Context())
	if err != nil {
		return fail(c, err)
	}
	for _, p := range perfiles {
		if p.ID == in.PerfilID {
			h.manager.SelectProfile(p)
			return c.JSON(fiber.Map{"pendiente": p.Nombre})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PERFIL_NO_ENCONTRADO", Message: "el perfil no existe"})
}

// SubmitCode godoc
// @Summary      Verificar el código del perfil pendiente
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CodigoRequest  true  "codigo, recordar"
// @Success      200   {object}  map[string]bool
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/session/codigo [post]
func (h *SessionHandler) SubmitCode(c *fiber.Ctx) error {
	var in dto.CodigoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Recordar != nil {
		if err := h.manager.SetRemember(c.Context(), *in.Recordar); err != nil {
			return fail(c, err)
		}
	}
	ok, err := h.manager.SubmitAccessCode(c.Context(), in.Codigo)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": ok})
}

// Login godoc
// @Summary      Login de usuario de sistema (admin, barra, trial)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password, recordar"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.LoginResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Recordar != nil {
		if err := h.manager.SetRemember(c.Context(), *in.Recordar); err != nil {
			return fail(c, err)
		}
	}
	role, err := h.manager.LoginWithCredentials(c.Context(), in.Usuario, in.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, domain.ErrBackendNoDisponible) {
			status = fiber.StatusServiceUnavailable
		} else if errors.Is(err, domain.ErrRolDesconocido) {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(dto.LoginResponse{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Success: true, Role: role})
}

// Logout godoc
// @Summary      Cerrar sesión (limpia ambos tiers)
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.manager.Logout(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListProfiles godoc
// @Summary      Listar perfiles de personal
// @Tags         profiles
// @Produce      json
// @Success      200  {array}  entity.StaffProfile
// @Router       /api/profiles [get]
func (h *SessionHandler) ListProfiles(c *fiber.Ctx) error {
	perfiles, err := h.manager.ListProfiles(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(perfiles)
}

// AddProfile godoc
// @Summary      Crear un perfil de personal
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PerfilRequest  true  "nombre, codigo"
// @Success      201   {object}  entity.StaffProfile
// @Router       /api/profiles [post]
func (h *SessionHandler) AddProfile(c *fiber.Ctx) error {
	var in dto.PerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y codigo son requeridos"})
	}
	perfil, err := h.manager.AddProfile(c.Context(), in.Nombre, in.Codigo)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(perfil)
}

// DeleteProfile godoc
// @Summary      Eliminar un perfil (si es el activo, cierra la sesión)
// @Tags         profiles
// @Produce      json
// @Param        id  path  int  true  "id del perfil"
// @Success      200  {object}  map[string]bool
// @Router       /api/profiles/{id} [delete]
func (h *SessionHandler) DeleteProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.manager.DeleteProfile(c.Context(), int64(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
