package order_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandas-api/internal/application/order"
	"github.com/jhoicas/Comandas-api/internal/application/state"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/storage"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

func cerveza() entity.Product {
	return entity.Product{ID: 7, Nombre: "Cerveza artesanal", Precio: decimal.NewFromInt(12)}
}

func newCart(t *testing.T) (*order.Cart, *storage.Memory) {
	t.Helper()
	durable := storage.NewMemory()
	return order.NewCart(context.Background(), durable, logger.Nop()), durable
}

// Agregar dos veces el mismo producto fusiona en una línea con la suma.
func TestCart_AgregarFusionaLineas(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, cerveza(), 2)
	cart.AddItem(ctx, cerveza(), 3)

	lines := cart.Lines()
	require.Len(t, lines, 1, "debe haber exactamente una línea para el producto")
	assert.Equal(t, int64(5), lines[0].Cantidad)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(60)), "total = 5 × 12, fue %s", cart.Total())
}

// Decrement con cantidad 1 elimina la línea por completo.
func TestCart_DecrementarEnUnoElimina(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, cerveza(), 1)
	require.NoError(t, cart.Decrement(ctx, 7))

	assert.Empty(t, cart.Lines(), "la línea debe desaparecer al decrementar desde 1")
}

func TestCart_DecrementarResta(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, cerveza(), 3)
	require.NoError(t, cart.Decrement(ctx, 7))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Cantidad)
}

// UpdateQuantity fija tal cual: en 0 la línea sigue presente. Solo Decrement elimina.
func TestCart_FijarEnCeroNoElimina(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, cerveza(), 2)
	require.NoError(t, cart.UpdateQuantity(ctx, 7, 0))

	lines := cart.Lines()
	require.Len(t, lines, 1, "fijar en 0 no debe auto-eliminar")
	assert.Equal(t, int64(0), lines[0].Cantidad)
}

func TestCart_ActualizarLineaInexistente(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)
	assert.ErrorIs(t, cart.UpdateQuantity(ctx, 99, 2), domain.ErrLineaNoEncontrada)
	assert.ErrorIs(t, cart.Decrement(ctx, 99), domain.ErrLineaNoEncontrada)
	assert.ErrorIs(t, cart.Remove(ctx, 99), domain.ErrLineaNoEncontrada)
}

// La comanda persistida se restaura idéntica en una instancia nueva.
func TestCart_PersistenciaIdaYVuelta(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemory()
	cart := order.NewCart(ctx, durable, logger.Nop())
	cart.AddItem(ctx, cerveza(), 2)
	cart.AddItem(ctx, entity.Product{ID: 9, Nombre: "Limonada", Precio: decimal.NewFromInt(5)}, 1)

	restored := order.NewCart(ctx, durable, logger.Nop())
	assert.Equal(t, cart.Lines(), restored.Lines())
	assert.True(t, cart.Total().Equal(restored.Total()))
}

// Un cache corrupto degrada a comanda vacía sin pánico.
func TestCart_CacheCorruptoDegradaAVacia(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemory()
	require.NoError(t, durable.Set(ctx, state.KeyCurrentOrder, "{{{no es json"))

	cart := order.NewCart(ctx, durable, logger.Nop())
	assert.Empty(t, cart.Lines())
}

// Clear vacía la comanda y elimina la entrada durable.
func TestCart_ClearEliminaCacheDurable(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemory()
	cart := order.NewCart(ctx, durable, logger.Nop())
	cart.AddItem(ctx, cerveza(), 2)

	cart.Clear(ctx)

	assert.Empty(t, cart.Lines())
	_, err := durable.Get(ctx, state.KeyCurrentOrder)
	assert.ErrorIs(t, err, domain.ErrClaveNoEncontrada)
}

// AddItem no valida cantidades: la política heredada deja al llamador la
// responsabilidad (ver DESIGN.md). Este test fija ese comportamiento.
func TestCart_AgregarCantidadNegativaSeConserva(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, cerveza(), 2)
	cart.AddItem(ctx, cerveza(), -5)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(-3), lines[0].Cantidad)
}
