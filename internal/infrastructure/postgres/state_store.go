package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
)

var _ repository.StateStore = (*StateStore)(nil)

// StateStore StateStore durable sobre PostgreSQL: una tabla clave/valor por
// terminal. Esquema esperado:
//
//	CREATE TABLE IF NOT EXISTS terminal_state (
//	    terminal TEXT NOT NULL,
//	    clave    TEXT NOT NULL,
//	    valor    TEXT NOT NULL,
//	    PRIMARY KEY (terminal, clave)
//	);
type StateStore struct {
	pool     *pgxpool.Pool
	terminal string
}

// NewStateStore construye el adaptador de estado durable para un terminal.
func NewStateStore(pool *pgxpool.Pool, terminal string) *StateStore {
	return &StateStore{pool: pool, terminal: terminal}
}

// Get devuelve el valor de key o domain.ErrClaveNoEncontrada.
func (s *StateStore) Get(ctx context.Context, key string) (string, error) {
	var valor string
	err := s.pool.QueryRow(ctx,
		`SELECT valor FROM terminal_state WHERE terminal = $1 AND clave = $2`,
		s.terminal, key,
	).Scan(&valor)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrClaveNoEncontrada
	}
	if err != nil {
		return "", fmt.Errorf("select estado %s: %w", key, err)
	}
	return valor, nil
}

// Set escribe key=value con upsert (last-write-wins).
func (s *StateStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO terminal_state (terminal, clave, valor) VALUES ($1, $2, $3)
		 ON CONFLICT (terminal, clave) DO UPDATE SET valor = EXCLUDED.valor`,
		s.terminal, key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert estado %s: %w", key, err)
	}
	return nil
}

// Delete elimina las claves dadas; las ausentes no son error.
func (s *StateStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`DELETE FROM terminal_state WHERE terminal = $1 AND clave = ANY($2)`,
		s.terminal, keys,
	)
	if err != nil {
		return fmt.Errorf("delete estado: %w", err)
	}
	return nil
}
