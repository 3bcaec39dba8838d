package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandas-api/internal/application/state"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/storage"
)

func newTiers() state.Tiers {
	return state.Tiers{Ephemeral: storage.NewMemory(), Durable: storage.NewMemory()}
}

// El tier efímero gana aunque el durable tenga otro valor.
func TestTiers_Read_EfimeroPrimero(t *testing.T) {
	ctx := context.Background()
	tiers := newTiers()
	require.NoError(t, tiers.Ephemeral.Set(ctx, "k", "efimero"))
	require.NoError(t, tiers.Durable.Set(ctx, "k", "durable"))

	v, err := tiers.Read(ctx, "k", true)
	require.NoError(t, err)
	assert.Equal(t, "efimero", v)
}

// Con fallback permitido, una clave ausente del efímero se lee del durable.
func TestTiers_Read_FallbackDurable(t *testing.T) {
	ctx := context.Background()
	tiers := newTiers()
	require.NoError(t, tiers.Durable.Set(ctx, "k", "durable"))

	v, err := tiers.Read(ctx, "k", true)
	require.NoError(t, err)
	assert.Equal(t, "durable", v)

	// Sin fallback la clave simplemente no está.
	_, err = tiers.Read(ctx, "k", false)
	assert.ErrorIs(t, err, domain.ErrClaveNoEncontrada)
}

func TestTiers_Remember(t *testing.T) {
	ctx := context.Background()
	tiers := newTiers()
	assert.False(t, tiers.Remember(ctx))

	require.NoError(t, tiers.Durable.Set(ctx, state.KeyRememberSession, "true"))
	assert.True(t, tiers.Remember(ctx))
}

// Wipe elimina las claves de sesión de ambos tiers.
func TestTiers_Wipe_AmbosTiers(t *testing.T) {
	ctx := context.Background()
	tiers := newTiers()
	for _, k := range state.SessionKeys {
		require.NoError(t, tiers.Ephemeral.Set(ctx, k, "x"))
		require.NoError(t, tiers.Durable.Set(ctx, k, "x"))
	}

	require.NoError(t, tiers.Wipe(ctx))

	for _, k := range state.SessionKeys {
		_, err := tiers.Ephemeral.Get(ctx, k)
		assert.ErrorIs(t, err, domain.ErrClaveNoEncontrada, "efímero aún tiene %s", k)
		_, err = tiers.Durable.Get(ctx, k)
		assert.ErrorIs(t, err, domain.ErrClaveNoEncontrada, "durable aún tiene %s", k)
	}
}
