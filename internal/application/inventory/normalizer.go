// Package inventory normaliza peticiones de movimiento de inventario de forma
// variable (las vistas y versiones viejas del front envían nombres de campo y
// alias de valor distintos) a un único comando canónico validado, y lo
// despacha al servicio remoto.
package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// Alias aceptados por campo lógico, en orden de precedencia. La lista ES el
// contrato: cada forma observada en producción tiene su entrada aquí, no
// condicionales repartidos por los call sites.
var (
	productAliases  = []string{"producto", "producto_id", "productoId", "producto.id", "id"}
	kindAliases     = []string{"tipo", "tipoMovimiento"}
	quantityAliases = []string{"cantidad", "cantidad_raw", "qty", "amount"}
	reasonAliases   = []string{"motivo", "descripcion", "detalle"}

	kindIn  = map[string]bool{"entrada": true, "in": true, "ingreso": true, "ingresar": true, "add": true, "agregar": true, "e": true}
	kindOut = map[string]bool{"salida": true, "out": true, "egreso": true, "retirar": true, "remove": true, "quitar": true, "s": true}
)

// Normalize convierte una petición de forma arbitraria en un MovementCommand
// canónico, o falla con un error tipado (domain.ErrMovimientoSinProducto,
// ErrTipoMovimientoInvalido, ErrCantidadInvalida). Total: nunca devuelve un
// comando a medio normalizar ni descarta un campo malformado en silencio.
func Normalize(raw map[string]any) (entity.MovementCommand, error) {
	var cmd entity.MovementCommand

	productoID, ok := resolveProducto(raw)
	if !ok {
		return cmd, domain.ErrMovimientoSinProducto
	}

	kind, ok := resolveKind(raw)
	if !ok {
		return cmd, domain.ErrTipoMovimientoInvalido
	}

	cantidad, ok := resolveCantidad(raw)
	if !ok {
		return cmd, domain.ErrCantidadInvalida
	}

	cmd.ProductoID = productoID
	cmd.Kind = kind
	cmd.Cantidad = cantidad
	cmd.Motivo = firstString(raw, reasonAliases)
	if v, present := raw["usuario"]; present {
		cmd.Actor, _ = scalarString(v)
	}
	return cmd, nil
}

// resolveProducto primer alias presente con un id numérico; "producto.id"
// cubre el caso en que producto llega como objeto anidado.
func resolveProducto(raw map[string]any) (int64, bool) {
	for _, alias := range productAliases {
		var v any
		var present bool
		if alias == "producto.id" {
			nested, ok := raw["producto"].(map[string]any)
			if !ok {
				continue
			}
			v, present = nested["id"]
		} else {
			v, present = raw[alias]
		}
		if !present {
			continue
		}
		s, ok := scalarString(v)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}

func resolveKind(raw map[string]any) (string, bool) {
	var s string
	for _, alias := range kindAliases {
		if v, present := raw[alias]; present {
			s, _ = scalarString(v)
			break
		}
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case kindIn[s]:
		return entity.MovementIn, true
	case kindOut[s]:
		return entity.MovementOut, true
	default:
		return "", false
	}
}

func resolveCantidad(raw map[string]any) (decimal.Decimal, bool) {
	for _, alias := range quantityAliases {
		v, present := raw[alias]
		if !present {
			continue
		}
		s, ok := scalarString(v)
		if !ok {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil || !d.GreaterThan(decimal.Zero) {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

func firstString(raw map[string]any, aliases []string) string {
	for _, alias := range aliases {
		if v, present := raw[alias]; present {
			if s, ok := scalarString(v); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// scalarString coerciona un escalar JSON a string. Objetos, listas, bool y
// null no son escalares utilizables.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return "", false
	}
}
