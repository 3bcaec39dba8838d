package order_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comandas-api/internal/application/order"
)

// El poller refresca al arrancar, sigue a intervalo fijo y para con el contexto.
func TestPoller_RefrescaYCancela(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		order.Poller{
			Interval: 5 * time.Millisecond,
			Refresh: func(context.Context) error {
				calls.Add(1)
				return nil
			},
		}.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond,
		"debe refrescar varias veces")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("el poller no terminó al cancelar el contexto")
	}
}
