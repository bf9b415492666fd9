// Package cart implements the shopping cart state machine. All
// mutations go through a small set of operations, totals are recomputed
// from the item list after every transition, and the full state is
// written through to the store before the operation returns.
package cart

import (
	"log"
	"sync"

	"github.com/AleSenlle/el-brote-verde/helpers"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/storage"
)

// Config holds the shipping rules.
type Config struct {
	FreeShippingThreshold float64
	ShippingCost          float64
}

// DefaultConfig: free shipping above 50, otherwise a flat 10.
var DefaultConfig = Config{FreeShippingThreshold: 50, ShippingCost: 10}

// Machine owns one cart. gin serves requests concurrently, so unlike
// the event-loop original the machine carries its own lock.
type Machine struct {
	mu    sync.Mutex
	store *storage.Store
	key   string
	cfg   Config
	state models.CartState
}

// New rehydrates the cart persisted under key, or starts empty when
// nothing valid is there.
func New(store *storage.Store, key string, cfg Config) *Machine {
	m := &Machine{store: store, key: key, cfg: cfg}
	m.state = storage.LoadCart(store, key)
	m.recompute()
	return m
}

// AddToCart adds one unit of item. An existing line's quantity grows by
// one; a new line starts at quantity one. Items without an ID or a
// positive price are ignored: this is a defensive guard, not an error.
func (m *Machine) AddToCart(item models.CartItem) {
	if item.ID == "" || item.Price <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for i := range m.state.CartItems {
		if m.state.CartItems[i].ID == item.ID {
			m.state.CartItems[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		m.state.CartItems = append(m.state.CartItems, item)
	}
	m.commit()
}

// RemoveFromCart deletes the line with the given ID. Unknown IDs are a
// no-op.
func (m *Machine) RemoveFromCart(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.state.CartItems[:0]
	for _, it := range m.state.CartItems {
		if it.ID != id {
			items = append(items, it)
		}
	}
	if len(items) == len(m.state.CartItems) {
		return
	}
	m.state.CartItems = items
	m.commit()
}

// UpdateQuantity sets a line's quantity outright. Zero or negative
// quantities remove the line instead.
func (m *Machine) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(id)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.CartItems {
		if m.state.CartItems[i].ID == id {
			m.state.CartItems[i].Quantity = quantity
			m.commit()
			return
		}
	}
}

// Clear resets the cart to empty. The caller is responsible for having
// confirmed the action with the user first.
func (m *Machine) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = models.CartState{}
	m.commit()
}

// State returns a copy of the current cart state.
func (m *Machine) State() models.CartState {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.state
	out.CartItems = append([]models.CartItem(nil), m.state.CartItems...)
	return out
}

// ItemQuantity returns the quantity of the line with the given ID, or
// zero when it is not in the cart.
func (m *Machine) ItemQuantity(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.state.CartItems {
		if it.ID == id {
			return it.Quantity
		}
	}
	return 0
}

// Shipping returns the shipping cost for the current cart: zero above
// the free-shipping threshold, the flat cost otherwise.
func (m *Machine) Shipping() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shippingLocked()
}

// Total returns the grand total, totalAmount plus shipping, rounded to
// two decimals.
func (m *Machine) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return helpers.RoundPrice(m.state.TotalAmount + m.shippingLocked())
}

func (m *Machine) shippingLocked() float64 {
	if m.state.TotalAmount > m.cfg.FreeShippingThreshold {
		return 0
	}
	return m.cfg.ShippingCost
}

// recompute derives totals from the item list. This is the single
// canonical totals computation; add/remove never apply deltas.
func (m *Machine) recompute() {
	var amount float64
	var count int
	for _, it := range m.state.CartItems {
		amount += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	m.state.TotalAmount = helpers.RoundPrice(amount)
	m.state.TotalItems = count
}

// commit recomputes totals and writes the state through before the
// mutation returns. A failed write keeps the in-memory state and logs;
// the cart must survive a broken store.
func (m *Machine) commit() {
	m.recompute()
	if err := storage.SaveCart(m.store, m.key, m.state); err != nil {
		log.Printf("⚠️ Failed to persist cart %q: %v", m.key, err)
	}
}
