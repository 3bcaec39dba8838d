package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
)

var _ repository.StateStore = (*Memory)(nil)

// Memory StateStore en memoria: el ámbito efímero del terminal. Se pierde al
// terminar el proceso, que es exactamente su contrato.
type Memory struct {
	mu sync.RWMutex
	kv map[string]string
}

// NewMemory construye el almacén efímero.
func NewMemory() *Memory {
	return &Memory{kv: make(map[string]string)}
}

// Get devuelve el valor de key o domain.ErrClaveNoEncontrada.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.kv[key]
	if !ok {
		return "", domain.ErrClaveNoEncontrada
	}
	return v, nil
}

// Set escribe key=value (last-write-wins).
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

// Delete elimina las claves dadas; las ausentes se ignoran.
func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.kv, k)
	}
	return nil
}
