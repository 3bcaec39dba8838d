package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// RegisterUseCase normaliza y despacha movimientos de inventario. Una
// normalización fallida nunca llega a la red; tras un registro exitoso se
// invoca el callback de refresco de stock del llamador.
type RegisterUseCase struct {
	registrar MovementRegistrar
	log       *logger.Logger
}

// NewRegisterUseCase construye el caso de uso de registro de movimientos.
func NewRegisterUseCase(registrar MovementRegistrar, log *logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{registrar: registrar, log: log}
}

// Register normaliza raw, despacha el comando con un id de idempotencia y
// refresca el stock. Quirk heredado del backend: si el registro falla pero el
// cuerpo del error trae campos que identifican el producto/movimiento, el
// movimiento casi seguro quedó registrado pese al error, así que se trata como
// éxito suave y se refresca igual. No "arreglar" sin confirmar con el servicio.
func (uc *RegisterUseCase) Register(ctx context.Context, raw map[string]any, refresh func(context.Context)) (entity.MovementCommand, error) {
	cmd, err := Normalize(raw)
	if err != nil {
		return entity.MovementCommand{}, err
	}
	cmd.ID = uuid.NewString()

	if err := uc.registrar.Register(ctx, cmd); err != nil {
		var srv *domain.ServerError
		if errors.As(err, &srv) && identifiesMovement(srv.Fields) {
			uc.log.Warn().
				Str("movimiento", cmd.ID).
				Int("status", srv.Status).
				Msg("registro respondió error con identificadores, se asume registrado")
			if refresh != nil {
				refresh(ctx)
			}
			return cmd, nil
		}
		return cmd, err
	}

	uc.log.Info().
		Str("movimiento", cmd.ID).
		Int64("producto", cmd.ProductoID).
		Str("tipo", cmd.Kind).
		Msg("movimiento registrado")
	if refresh != nil {
		refresh(ctx)
	}
	return cmd, nil
}

// identifiesMovement informa si el cuerpo de error trae campos que identifican
// el producto o el movimiento creado.
func identifiesMovement(fields map[string]any) bool {
	for _, k := range []string{"producto", "producto_id", "movimiento", "movimiento_id", "id"} {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}
