package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// Autenticación (recuperables: el usuario reintenta)
	ErrCodigoIncorrecto      = errors.New("código de acceso incorrecto")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrRolDesconocido        = errors.New("rol no reconocido por el terminal")
	ErrSinSesion             = errors.New("no hay sesión activa")
	ErrSinPerfilPendiente    = errors.New("no hay perfil pendiente de verificación")

	// Validación de movimientos (recuperables: el usuario corrige la entrada)
	ErrMovimientoSinProducto  = errors.New("movimiento sin producto")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento inválido")
	ErrCantidadInvalida       = errors.New("cantidad inválida")

	// Pedidos
	ErrComandaVacia      = errors.New("la comanda está vacía")
	ErrSinMesa           = errors.New("no hay mesa seleccionada")
	ErrLineaNoEncontrada = errors.New("el producto no está en la comanda")

	// Almacenamiento de estado
	ErrClaveNoEncontrada = errors.New("clave no encontrada")

	// Red: el servicio remoto no respondió (timeout, DNS, conexión rechazada).
	ErrBackendNoDisponible = errors.New("servicio de pedidos no disponible")
)

// ServerError respuesta no-2xx del servicio remoto. Detail se muestra al usuario
// tal cual cuando el servidor lo envía; Fields conserva el cuerpo decodificado
// del error para inspección (ver el caso de éxito-suave en movimientos).
type ServerError struct {
	Status int
	Detail string
	Fields map[string]any
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el servicio de pedidos respondió %d", e.Status)
}
