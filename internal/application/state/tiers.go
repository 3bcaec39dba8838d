// Package state expone los dos ámbitos de persistencia del terminal detrás de
// un contrato único de lectura con fallback explícito, en lugar de duplicar la
// lógica de "¿en qué tier está?" en cada punto de lectura.
package state

import (
	"context"
	"errors"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
)

// Claves persistidas. Ambos tiers usan los mismos nombres.
const (
	KeySelectedProfile  = "selectedProfile"  // JSON del actor (perfil o usuario de sistema)
	KeyCodigoConfirmado = "codigoConfirmado" // "true" o ausente
	KeyUserRole         = "userRole"
	KeyAuthToken        = "authToken"
	KeyRememberSession  = "rememberSession" // solo tier durable, "true" o ausente
	KeyCurrentOrder     = "currentOrder"    // solo tier durable, JSON de líneas de comanda
	KeyCodigoHash       = "codigoHash"      // solo tier durable, bcrypt del último código verificado
)

// SessionKeys claves que componen una sesión; Wipe las elimina de ambos tiers.
var SessionKeys = []string{
	KeySelectedProfile,
	KeyCodigoConfirmado,
	KeyUserRole,
	KeyAuthToken,
	KeyRememberSession,
	KeyCodigoHash,
}

// Tiers par de ámbitos de almacenamiento del terminal.
type Tiers struct {
	Ephemeral repository.StateStore
	Durable   repository.StateStore
}

// Read lee key del tier efímero y, si no está y allowDurableFallback es true,
// del durable. Devuelve domain.ErrClaveNoEncontrada si no está en ninguno.
func (t Tiers) Read(ctx context.Context, key string, allowDurableFallback bool) (string, error) {
	v, err := t.Ephemeral.Get(ctx, key)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, domain.ErrClaveNoEncontrada) {
		return "", err
	}
	if !allowDurableFallback {
		return "", domain.ErrClaveNoEncontrada
	}
	return t.Durable.Get(ctx, key)
}

// Active devuelve el tier donde deben persistirse los datos de sesión según la
// preferencia de recordar: durable si remember, efímero si no.
func (t Tiers) Active(remember bool) repository.StateStore {
	if remember {
		return t.Durable
	}
	return t.Ephemeral
}

// Remember informa si la preferencia "recordar sesión" está activa. Vive solo
// en el tier durable: es lo que decide si una sesión sobrevive al reinicio.
func (t Tiers) Remember(ctx context.Context) bool {
	v, err := t.Durable.Get(ctx, KeyRememberSession)
	return err == nil && v == "true"
}

// Wipe elimina las claves de sesión de ambos tiers, incondicionalmente.
func (t Tiers) Wipe(ctx context.Context) error {
	errEph := t.Ephemeral.Delete(ctx, SessionKeys...)
	errDur := t.Durable.Delete(ctx, SessionKeys...)
	if errEph != nil {
		return errEph
	}
	return errDur
}
