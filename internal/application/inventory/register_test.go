package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandas-api/internal/application/inventory"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

type fakeRegistrar struct {
	llamadas []entity.MovementCommand
	err      error
}

func (f *fakeRegistrar) Register(_ context.Context, cmd entity.MovementCommand) error {
	f.llamadas = append(f.llamadas, cmd)
	return f.err
}

func rawValido() map[string]any {
	return map[string]any{
		"producto": float64(7),
		"tipo":     "entrada",
		"cantidad": float64(3),
		"motivo":   "Reposición",
	}
}

func TestRegister_ExitoRefresca(t *testing.T) {
	reg := &fakeRegistrar{}
	uc := inventory.NewRegisterUseCase(reg, logger.Nop())

	refrescos := 0
	cmd, err := uc.Register(context.Background(), rawValido(), func(context.Context) { refrescos++ })
	require.NoError(t, err)

	require.Len(t, reg.llamadas, 1)
	assert.NotEmpty(t, cmd.ID, "cada despacho lleva id de idempotencia")
	assert.Equal(t, cmd.ID, reg.llamadas[0].ID)
	assert.Equal(t, int64(7), reg.llamadas[0].ProductoID)
	assert.Equal(t, 1, refrescos)
}

// Normalización fallida: el registrador nunca se invoca.
func TestRegister_NormalizacionFallidaNoDespacha(t *testing.T) {
	reg := &fakeRegistrar{}
	uc := inventory.NewRegisterUseCase(reg, logger.Nop())

	raw := rawValido()
	raw["tipo"] = "foo"
	_, err := uc.Register(context.Background(), raw, func(context.Context) {
		t.Fatal("no debe refrescar tras un fallo de normalización")
	})

	assert.ErrorIs(t, err, domain.ErrTipoMovimientoInvalido)
	assert.Empty(t, reg.llamadas)
}

// Error del servidor CON identificadores del movimiento: éxito suave.
func TestRegister_ErrorConIdentificadoresEsExitoSuave(t *testing.T) {
	reg := &fakeRegistrar{err: &domain.ServerError{
		Status: 500,
		Detail: "error interno",
		Fields: map[string]any{"movimiento_id": float64(41)},
	}}
	uc := inventory.NewRegisterUseCase(reg, logger.Nop())

	refrescos := 0
	_, err := uc.Register(context.Background(), rawValido(), func(context.Context) { refrescos++ })

	assert.NoError(t, err, "el movimiento quedó registrado pese al error")
	assert.Equal(t, 1, refrescos)
}

// Error del servidor SIN identificadores: se propaga y no se refresca.
func TestRegister_ErrorSinIdentificadoresPropaga(t *testing.T) {
	reg := &fakeRegistrar{err: &domain.ServerError{Status: 500, Detail: "caído"}}
	uc := inventory.NewRegisterUseCase(reg, logger.Nop())

	_, err := uc.Register(context.Background(), rawValido(), func(context.Context) {
		t.Fatal("no debe refrescar cuando el registro falló de verdad")
	})

	var srv *domain.ServerError
	require.ErrorAs(t, err, &srv)
	assert.Equal(t, 500, srv.Status)
}

func TestRegister_ErrorDeTransportePropaga(t *testing.T) {
	reg := &fakeRegistrar{err: errors.New("connection refused")}
	uc := inventory.NewRegisterUseCase(reg, logger.Nop())

	_, err := uc.Register(context.Background(), rawValido(), nil)
	assert.Error(t, err)
}
