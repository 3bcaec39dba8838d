package order

import "sync"

// TableLock coordina la mesa seleccionada y el candado que decide si un envío
// crea un pedido nuevo o agrega ítems al abierto. Estados:
//
//	Unlocked (sin mesa) → Selected(mesa) → Locked(mesa) → Unlocked al limpiar.
//
// El candado es un resguardo local del terminal contra cambiar de mesa a mitad
// de una comanda; no garantiza exclusividad entre terminales sobre la misma
// mesa (eso es asunto del servicio de pedidos).
type TableLock struct {
	mu       sync.Mutex
	mesa     int64
	selected bool
	locked   bool
}

// Select elige la mesa. Mientras está Locked la selección se ignora y devuelve
// false; el terminal no cambia de mesa con un pedido abierto.
func (t *TableLock) Select(mesa int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.locked {
		return false
	}
	t.mesa = mesa
	t.selected = true
	return true
}

// Mesa devuelve la mesa seleccionada, si hay.
func (t *TableLock) Mesa() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mesa, t.selected
}

// ForceAppend informa si el próximo envío debe agregar al pedido abierto en
// lugar de crear uno nuevo (true a partir del primer envío exitoso).
func (t *TableLock) ForceAppend() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.locked
}

// MarkSubmitted registra un envío exitoso: la mesa queda bloqueada y los
// envíos siguientes para ella llevan force_append.
func (t *TableLock) MarkSubmitted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.selected {
		t.locked = true
	}
}

// Clear vuelve a Unlocked y olvida la mesa. Lo invoca la limpieza explícita de
// la comanda, no el envío exitoso.
func (t *TableLock) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mesa = 0
	t.selected = false
	t.locked = false
}
