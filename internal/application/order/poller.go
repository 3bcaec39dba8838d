package order

import (
	"context"
	"time"
)

// Poller ejecuta un refresco a intervalo fijo hasta que el contexto se
// cancela. No hay token de cancelación por petición en vuelo: una respuesta
// tardía tras la cancelación simplemente no se aplica, lo cual es aceptable
// porque los refrescos son lecturas idempotentes.
type Poller struct {
	Interval time.Duration
	Refresh  func(ctx context.Context) error
}

// Run sondea hasta que ctx termine. Hace un refresco inmediato al arrancar;
// los errores ya quedan registrados por el refresco, aquí solo se ignoran.
func (p Poller) Run(ctx context.Context) {
	_ = p.Refresh(ctx)
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = p.Refresh(ctx)
		}
	}
}
