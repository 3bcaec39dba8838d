package inventory

import (
	"context"

	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// MovementRegistrar puerto del endpoint remoto de registro de movimientos.
type MovementRegistrar interface {
	Register(ctx context.Context, cmd entity.MovementCommand) error
}
