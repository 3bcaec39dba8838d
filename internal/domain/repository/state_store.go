package repository

import "context"

// StateStore puerto de persistencia clave/valor para el estado del terminal.
// Dos ámbitos independientes lo implementan: uno efímero (memoria, se pierde al
// terminar el proceso) y uno durable (Redis o PostgreSQL, sobrevive reinicios).
// Las escrituras son last-write-wins a nivel de clave.
type StateStore interface {
	// Get devuelve el valor de key, o domain.ErrClaveNoEncontrada si no existe.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete elimina las claves dadas; las ausentes no son error.
	Delete(ctx context.Context, keys ...string) error
}
