package backend

import (
	"context"
	"fmt"
	"net/http"

	appsession "github.com/jhoicas/Comandas-api/internal/application/session"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

var (
	_ appsession.ProfileDirectory = (*Client)(nil)
	_ appsession.CodeVerifier     = (*Client)(nil)
)

// List GET /profiles.
func (c *Client) List(ctx context.Context) ([]entity.StaffProfile, error) {
	var out []entity.StaffProfile
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /profiles.
func (c *Client) Create(ctx context.Context, nombre, codigo string) (entity.StaffProfile, error) {
	in := map[string]string{"nombre": nombre, "codigo": codigo}
	var out entity.StaffProfile
	if err := c.do(ctx, http.MethodPost, "/profiles", in, &out); err != nil {
		return entity.StaffProfile{}, err
	}
	return out, nil
}

// Delete DELETE /profiles/{id}.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/profiles/%d", id), nil, nil)
}

// Verify POST /verify-code. Un código incorrecto es (false, nil).
func (c *Client) Verify(ctx context.Context, perfilID int64, codigo string) (bool, error) {
	in := map[string]any{"profileId": perfilID, "code": codigo}
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/verify-code", in, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}
