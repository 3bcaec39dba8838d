package order

import (
	"context"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// EstadoPendiente estado inicial de todo pedido enviado desde el terminal.
const EstadoPendiente = "pendiente"

// FinalizeUseCase compone comanda + mesa + actor en el comando de envío al
// servicio de pedidos. Ningún estado se muta antes de que la llamada de red
// resuelva: con éxito se vacía la comanda y se bloquea la mesa; con fallo todo
// queda como estaba para reintentar.
type FinalizeUseCase struct {
	cart      *Cart
	lock      *TableLock
	submitter OrderSubmitter
	log       *logger.Logger
}

// NewFinalizeUseCase construye el caso de uso de envío de comanda.
func NewFinalizeUseCase(cart *Cart, lock *TableLock, submitter OrderSubmitter, log *logger.Logger) *FinalizeUseCase {
	return &FinalizeUseCase{cart: cart, lock: lock, submitter: submitter, log: log}
}

// Finalize envía la comanda actual para la mesa seleccionada a nombre del
// actor de la sesión. A partir del primer envío exitoso la mesa queda
// bloqueada y los siguientes envíos llevan force_append.
func (uc *FinalizeUseCase) Finalize(ctx context.Context, actor entity.Session) error {
	if !actor.Confirmed {
		return domain.ErrSinSesion
	}
	if uc.cart.Empty() {
		return domain.ErrComandaVacia
	}
	mesa, ok := uc.lock.Mesa()
	if !ok {
		return domain.ErrSinMesa
	}

	sub := Submission{
		Mesa:        mesa,
		Estado:      EstadoPendiente,
		Lines:       uc.cart.Lines(),
		ForceAppend: uc.lock.ForceAppend(),
	}
	if actor.Profile != nil {
		sub.Mesera = actor.Profile.Nombre
	} else if actor.User != nil {
		sub.Usuario = actor.User.Username
	}

	if err := uc.submitter.Submit(ctx, sub); err != nil {
		return err
	}

	uc.lock.MarkSubmitted()
	uc.cart.Clear(ctx)
	uc.log.Info().
		Int64("mesa", mesa).
		Bool("force_append", sub.ForceAppend).
		Int("lineas", len(sub.Lines)).
		Msg("comanda enviada")
	return nil
}
