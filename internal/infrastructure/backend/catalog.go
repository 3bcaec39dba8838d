package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Comandas-api/internal/application/catalog"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

var _ catalog.Source = (*Client)(nil)

// Products GET /products.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tables GET /tables.
func (c *Client) Tables(ctx context.Context) ([]entity.Table, error) {
	var out []entity.Table
	if err := c.do(ctx, http.MethodGet, "/tables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
