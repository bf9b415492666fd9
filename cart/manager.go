package cart

import (
	"sync"

	"github.com/AleSenlle/el-brote-verde/storage"
)

// Manager hands out one Machine per user, rehydrating each from its own
// storage key on first use. One cart per user, as the data model
// requires.
type Manager struct {
	mu       sync.Mutex
	store    *storage.Store
	cfg      Config
	machines map[string]*Machine
}

// NewManager builds a manager over the given store.
func NewManager(store *storage.Store, cfg Config) *Manager {
	return &Manager{
		store:    store,
		cfg:      cfg,
		machines: make(map[string]*Machine),
	}
}

// ForUser returns the user's cart machine, creating (and rehydrating)
// it on first access.
func (m *Manager) ForUser(userID string) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mc, ok := m.machines[userID]; ok {
		return mc
	}
	mc := New(m.store, cartKey(userID), m.cfg)
	m.machines[userID] = mc
	return mc
}

func cartKey(userID string) string {
	if userID == "" {
		return "cart"
	}
	return "cart:" + userID
}
