package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandas-api/internal/application/order"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/infrastructure/backend"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

func newClient(t *testing.T, handler http.HandlerFunc, token backend.TokenFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 2*time.Second, token, logger.Nop())
}

func TestLogin_CredencialesRechazadas(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"detail":"credenciales inválidas"}`))
		}, nil)

		_, err := c.Login(context.Background(), "admin", "mala")
		assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas, "status %d", status)
	}
}

func TestLogin_Exito(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "admin", in["username"])
		_, _ = w.Write([]byte(`{"role":"admin","username":"admin","user_id":7,"token":"abc"}`))
	}, nil)

	res, err := c.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, "admin", res.Role)
	assert.Equal(t, "abc", res.Token)
}

// Un 500 con cuerpo JSON llega como *domain.ServerError con detail y campos.
func TestServerError_ConservaDetailYCampos(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"sin stock","producto_id":5}`))
	}, nil)

	err := c.Register(context.Background(), entity.MovementCommand{ProductoID: 5, Kind: entity.MovementIn, Cantidad: decimal.NewFromInt(1)})
	var srv *domain.ServerError
	require.ErrorAs(t, err, &srv)
	assert.Equal(t, http.StatusInternalServerError, srv.Status)
	assert.Equal(t, "sin stock", srv.Detail)
	assert.Contains(t, srv.Fields, "producto_id")
}

// Servicio inalcanzable: el error envuelve domain.ErrBackendNoDisponible.
func TestTransporteCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // puerto ya cerrado

	c := backend.NewClient(srv.URL, time.Second, nil, logger.Nop())
	_, err := c.Pending(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendNoDisponible)
}

func TestSubmit_FormaDelPayload(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}, func() string { return "tok-1" })

	err := c.Submit(context.Background(), order.Submission{
		Mesa:   4,
		Estado: "pendiente",
		Lines: []entity.OrderLine{
			{ProductoID: 2, Nombre: "Mojito", Precio: decimal.NewFromInt(10), Cantidad: 3},
		},
		Mesera:      "Lucía",
		ForceAppend: true,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(4), got["mesa"])
	assert.Equal(t, "pendiente", got["estado"])
	assert.Equal(t, "Lucía", got["mesera"])
	assert.Equal(t, true, got["force_append"])
	_, tieneUsuario := got["usuario"]
	assert.False(t, tieneUsuario, "con mesera no se manda usuario")

	productos, ok := got["productos"].([]any)
	require.True(t, ok)
	require.Len(t, productos, 1)
	linea := productos[0].(map[string]any)
	assert.Equal(t, float64(2), linea["producto"])
	assert.Equal(t, float64(3), linea["cantidad"])
}

func TestMineToday_EscapaElActor(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hoy", r.URL.Query().Get("fecha"))
		assert.Equal(t, "Lucía Gómez", r.URL.Query().Get("mesera"))
		_, _ = w.Write([]byte(`[{"id":1,"mesa":4,"estado":"pendiente"}]`))
	}, nil)

	pedidos, err := c.MineToday(context.Background(), "Lucía Gómez")
	require.NoError(t, err)
	require.Len(t, pedidos, 1)
	assert.Equal(t, int64(1), pedidos[0].ID)
}

func TestDispatch_RutaPorID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/41/despachar", r.URL.Path)
	}, nil)

	assert.NoError(t, c.Dispatch(context.Background(), 41))
}

func TestVerify_CodigoIncorrectoNoEsError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify-code", r.URL.Path)
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, float64(3), in["profileId"])
		_, _ = w.Write([]byte(`{"success":false}`))
	}, nil)

	ok, err := c.Verify(context.Background(), 3, "0000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister_IncluyeClienteUID(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movements", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}, nil)

	err := c.Register(context.Background(), entity.MovementCommand{
		ID:         "uid-123",
		ProductoID: 5,
		Kind:       entity.MovementOut,
		Cantidad:   decimal.NewFromFloat(1.5),
		Motivo:     "Merma",
		Actor:      "Lucía",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-123", got["cliente_uid"])
	assert.Equal(t, "out", got["tipo"])
	assert.Equal(t, "Merma", got["descripcion"])
}
