package order

import (
	"context"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// Submission pedido listo para enviar al servicio remoto.
type Submission struct {
	Mesa        int64
	Estado      string
	Lines       []entity.OrderLine
	Mesera      string // nombre del perfil staff, si aplica
	Usuario     string // username del usuario de sistema, si aplica
	ForceAppend bool
}

// OrderSubmitter puerto del endpoint remoto de creación/append de pedidos.
type OrderSubmitter interface {
	Submit(ctx context.Context, s Submission) error
}

// OrderFeed puerto de consulta de pedidos abiertos para los sondeos periódicos.
type OrderFeed interface {
	Pending(ctx context.Context) ([]dto.PedidoPendiente, error)
	MineToday(ctx context.Context, actor string) ([]dto.PedidoPendiente, error)
}
