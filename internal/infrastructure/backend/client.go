// Package backend es el cliente HTTP del servicio remoto de pedidos. Las
// formas de wire las posee el servicio; aquí solo se mapean a entidades y
// errores del dominio: transporte caído → domain.ErrBackendNoDisponible,
// respuesta no-2xx → *domain.ServerError con el detail y el cuerpo decodificado.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// TokenFunc devuelve el bearer token de la sesión activa, o "" si no hay.
type TokenFunc func() string

// Client cliente del servicio de pedidos.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
	log     *logger.Logger
}

// NewClient construye el cliente. token puede ser nil para endpoints públicos.
func NewClient(baseURL string, timeout time.Duration, token TokenFunc, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar body %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("servicio de pedidos inalcanzable")
		return fmt.Errorf("%w: %s %s", domain.ErrBackendNoDisponible, method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s", domain.ErrBackendNoDisponible, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fields := map[string]any{}
		_ = json.Unmarshal(data, &fields)
		detail, _ := fields["detail"].(string)
		return &domain.ServerError{Status: resp.StatusCode, Detail: detail, Fields: fields}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
		}
	}
	return nil
}
