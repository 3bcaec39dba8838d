package order

import (
	"context"
	"sync"

	"github.com/jhoicas/Comandas-api/internal/application/dto"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// Board cache local de pedidos abiertos que alimenta las vistas de
// "pendientes" y "mis pedidos de hoy". Lo refresca el Poller en segundo
// plano; los handlers solo leen la instantánea. Los fallos de refresco se
// registran y se conserva la última instantánea buena (lecturas idempotentes,
// el próximo sondeo reconcilia).
type Board struct {
	feed OrderFeed
	log  *logger.Logger

	mu       sync.RWMutex
	pending  []dto.PedidoPendiente
	mine     []dto.PedidoPendiente
	mineFor  string
}

// NewBoard construye el tablero de pedidos.
func NewBoard(feed OrderFeed, log *logger.Logger) *Board {
	return &Board{feed: feed, log: log}
}

// RefreshPending actualiza la lista de pedidos pendientes.
func (b *Board) RefreshPending(ctx context.Context) error {
	list, err := b.feed.Pending(ctx)
	if err != nil {
		b.log.Warn().Err(err).Msg("refresco de pedidos pendientes falló")
		return err
	}
	b.mu.Lock()
	b.pending = list
	b.mu.Unlock()
	return nil
}

// SetActor fija el actor cuyos pedidos del día sigue el tablero.
func (b *Board) SetActor(actor string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mineFor != actor {
		b.mineFor = actor
		b.mine = nil
	}
}

// RefreshMine actualiza "mis pedidos de hoy" del actor fijado.
func (b *Board) RefreshMine(ctx context.Context) error {
	b.mu.RLock()
	actor := b.mineFor
	b.mu.RUnlock()
	if actor == "" {
		return nil
	}
	list, err := b.feed.MineToday(ctx, actor)
	if err != nil {
		b.log.Warn().Err(err).Msg("refresco de mis pedidos falló")
		return err
	}
	b.mu.Lock()
	b.mine = list
	b.mu.Unlock()
	return nil
}

// Pending instantánea de los pedidos pendientes.
func (b *Board) Pending() []dto.PedidoPendiente {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]dto.PedidoPendiente, len(b.pending))
	copy(out, b.pending)
	return out
}

// Mine instantánea de "mis pedidos de hoy".
func (b *Board) Mine() []dto.PedidoPendiente {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]dto.PedidoPendiente, len(b.mine))
	copy(out, b.mine)
	return out
}

// Dispatch quita un pedido pendiente de la instantánea local tras despacharlo.
// Es deliberadamente optimista: no espera confirmación del servicio, el
// siguiente sondeo periódico reconcilia.
func (b *Board) Dispatch(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, p := range b.pending {
		if p.ID == id {
			b.pending = append(b.pending[:i], b.pending[i+1:]...)
			return
		}
	}
}
