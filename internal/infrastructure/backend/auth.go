package backend

import (
	"context"
	"errors"
	"net/http"

	appsession "github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/internal/domain"
)

var _ appsession.CredentialAuthenticator = (*Client)(nil)

// Login POST /login. Credenciales rechazadas por el servicio se mapean a
// domain.ErrCredencialesInvalidas; el resto de fallos conserva su tipo.
func (c *Client) Login(ctx context.Context, usuario, password string) (appsession.LoginResult, error) {
	in := map[string]string{"username": usuario, "password": password}
	var out struct {
		Role     string `json:"role"`
		Username string `json:"username"`
		UserID   int64  `json:"user_id"`
		Token    string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", in, &out); err != nil {
		var srv *domain.ServerError
		if errors.As(err, &srv) && (srv.Status == http.StatusBadRequest ||
			srv.Status == http.StatusUnauthorized || srv.Status == http.StatusForbidden) {
			return appsession.LoginResult{}, domain.ErrCredencialesInvalidas
		}
		return appsession.LoginResult{}, err
	}
	return appsession.LoginResult{
		UserID:   out.UserID,
		Username: out.Username,
		Role:     out.Role,
		Token:    out.Token,
	}, nil
}
