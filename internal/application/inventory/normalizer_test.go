package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandas-api/internal/application/inventory"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// Caso de referencia: alias de campo y de valor en una misma petición.
func TestNormalize_AliasCompletos(t *testing.T) {
	cmd, err := inventory.Normalize(map[string]any{
		"producto_id":    float64(5), // así llega un número por JSON
		"tipoMovimiento": "ingreso",
		"cantidad":       "3",
		"motivo":         "Compra",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), cmd.ProductoID)
	assert.Equal(t, entity.MovementIn, cmd.Kind)
	assert.True(t, cmd.Cantidad.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Compra", cmd.Motivo)
	assert.Empty(t, cmd.Actor, "sin usuario el actor queda vacío")
}

// producto como objeto anidado: se toma producto.id.
func TestNormalize_ProductoAnidado(t *testing.T) {
	cmd, err := inventory.Normalize(map[string]any{
		"producto": map[string]any{"id": float64(8), "nombre": "Ginebra"},
		"tipo":     "salida",
		"qty":      float64(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), cmd.ProductoID)
	assert.Equal(t, entity.MovementOut, cmd.Kind)
}

// Precedencia de alias de producto: producto escalar gana a id.
func TestNormalize_PrecedenciaProducto(t *testing.T) {
	cmd, err := inventory.Normalize(map[string]any{
		"producto": float64(3),
		"id":       float64(99),
		"tipo":     "e",
		"cantidad": float64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.ProductoID)
}

// Los alias de tipo se normalizan con minúsculas y espacios recortados.
func TestNormalize_TipoConMayusculasYEspacios(t *testing.T) {
	cmd, err := inventory.Normalize(map[string]any{
		"producto": float64(1),
		"tipo":     "  ENTRADA ",
		"cantidad": float64(4),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementIn, cmd.Kind)
}

// Un tipo fuera de los alias es fallo tipado, sin despacho.
func TestNormalize_TipoInvalido(t *testing.T) {
	_, err := inventory.Normalize(map[string]any{
		"producto": float64(1),
		"tipo":     "foo",
		"cantidad": float64(2),
	})
	assert.ErrorIs(t, err, domain.ErrTipoMovimientoInvalido)
}

func TestNormalize_SinProducto(t *testing.T) {
	_, err := inventory.Normalize(map[string]any{
		"tipo":     "entrada",
		"cantidad": float64(2),
	})
	assert.ErrorIs(t, err, domain.ErrMovimientoSinProducto)
}

func TestNormalize_CantidadInvalida(t *testing.T) {
	casos := []map[string]any{
		{"producto": float64(1), "tipo": "entrada"},                         // ausente
		{"producto": float64(1), "tipo": "entrada", "cantidad": ""},         // vacía
		{"producto": float64(1), "tipo": "entrada", "cantidad": "abc"},      // no numérica
		{"producto": float64(1), "tipo": "entrada", "cantidad": float64(0)}, // cero
		{"producto": float64(1), "tipo": "entrada", "amount": "-2"},         // negativa
	}
	for _, raw := range casos {
		_, err := inventory.Normalize(raw)
		assert.ErrorIs(t, err, domain.ErrCantidadInvalida, "caso %v", raw)
	}
}

// El usuario pasa tal cual; la descripción toma el primer alias presente.
func TestNormalize_UsuarioYDescripcion(t *testing.T) {
	cmd, err := inventory.Normalize(map[string]any{
		"producto":     float64(2),
		"tipo":         "retirar",
		"cantidad_raw": "1.5",
		"descripcion":  "Merma por rotura",
		"usuario":      "Lucía",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementOut, cmd.Kind)
	assert.True(t, cmd.Cantidad.Equal(decimal.NewFromFloat(1.5)))
	assert.Equal(t, "Merma por rotura", cmd.Motivo)
	assert.Equal(t, "Lucía", cmd.Actor)
}
