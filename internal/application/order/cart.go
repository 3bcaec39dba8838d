package order

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandas-api/internal/application/state"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/domain/repository"
	"github.com/jhoicas/Comandas-api/pkg/logger"
)

// Cart comanda en curso: lista ordenada de líneas, única por producto.
// Cada mutación serializa la lista completa al tier durable bajo
// state.KeyCurrentOrder; al construirse intenta restaurar desde ahí y un cache
// corrupto degrada a comanda vacía sin propagar el fallo.
type Cart struct {
	durable repository.StateStore
	log     *logger.Logger

	mu    sync.Mutex
	lines []entity.OrderLine
}

// NewCart construye la comanda restaurando el cache durable si existe.
func NewCart(ctx context.Context, durable repository.StateStore, log *logger.Logger) *Cart {
	c := &Cart{durable: durable, log: log}
	raw, err := durable.Get(ctx, state.KeyCurrentOrder)
	if err != nil {
		if !errors.Is(err, domain.ErrClaveNoEncontrada) {
			log.Warn().Err(err).Msg("no se pudo leer la comanda cacheada")
		}
		return c
	}
	if err := json.Unmarshal([]byte(raw), &c.lines); err != nil {
		log.Warn().Err(err).Msg("comanda cacheada corrupta, se inicia vacía")
		c.lines = nil
	}
	return c
}

// AddItem suma qty a la línea del producto, o agrega una línea nueva al final.
// No valida qty > 0: el llamador es responsable de pasar una cantidad sana
// (una qty negativa produce una línea con cantidad <= 0 que solo Decrement o
// Remove sanean). Se conserva así deliberadamente; ver DESIGN.md.
func (c *Cart) AddItem(ctx context.Context, p entity.Product, qty int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductoID == p.ID {
			c.lines[i].Cantidad += qty
			c.persist(ctx)
			return
		}
	}
	c.lines = append(c.lines, entity.OrderLine{
		ProductoID: p.ID,
		Nombre:     p.Nombre,
		Precio:     p.Precio,
		Cantidad:   qty,
	})
	c.persist(ctx)
}

// UpdateQuantity fija la cantidad de la línea tal cual, sin auto-eliminar en
// cero o negativo. "Fijar" y "decrementar" son operaciones distintas a
// propósito: solo Decrement elimina al llegar a cero.
func (c *Cart) UpdateQuantity(ctx context.Context, productoID, qty int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductoID == productoID {
			c.lines[i].Cantidad = qty
			c.persist(ctx)
			return nil
		}
	}
	return domain.ErrLineaNoEncontrada
}

// Decrement resta 1 a la línea; con cantidad 1 la elimina por completo.
func (c *Cart) Decrement(ctx context.Context, productoID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductoID == productoID {
			if c.lines[i].Cantidad > 1 {
				c.lines[i].Cantidad--
			} else {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			c.persist(ctx)
			return nil
		}
	}
	return domain.ErrLineaNoEncontrada
}

// Remove elimina la línea del producto incondicionalmente.
func (c *Cart) Remove(ctx context.Context, productoID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductoID == productoID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist(ctx)
			return nil
		}
	}
	return domain.ErrLineaNoEncontrada
}

// Clear vacía la comanda y elimina el cache durable.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	if err := c.durable.Delete(ctx, state.KeyCurrentOrder); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo eliminar la comanda cacheada")
	}
}

// Lines copia de las líneas actuales, en orden de inserción.
func (c *Cart) Lines() []entity.OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty informa si la comanda no tiene líneas.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Total Σ precio × cantidad. Siempre calculado, nunca almacenado.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// persist serializa la lista completa al tier durable. Un fallo de escritura
// no revierte la mutación en memoria: se registra y la comanda sigue usable.
func (c *Cart) persist(ctx context.Context) {
	raw, err := json.Marshal(c.lines)
	if err == nil {
		err = c.durable.Set(ctx, state.KeyCurrentOrder, string(raw))
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo persistir la comanda")
	}
}
