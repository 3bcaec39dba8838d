package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
)

const connectTimeout = 5 * time.Second

var _ repository.StateStore = (*Redis)(nil)

// Redis StateStore durable sobre Redis. Claves con prefijo "estado:" para
// convivir con otros usos de la misma instancia.
type Redis struct {
	client *redis.Client
}

// ConnectRedis abre un cliente Redis y valida conectividad con un ping.
func ConnectRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client}, nil
}

// Close cierra la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get devuelve el valor de key o domain.ErrClaveNoEncontrada.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrClaveNoEncontrada
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Set escribe key=value sin expiración: el estado del terminal vive hasta que
// el propio terminal lo borra.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete elimina las claves dadas; las ausentes no son error.
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *Redis) key(k string) string {
	return "estado:" + k
}
