package cart

import "sync"

// Manager owns one Store per session. Stores are process-local and
// vanish when the server exits; carts are deliberately not persisted.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]*Store),
	}
}

// Get returns the store for a session, creating it on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore()
		m.stores[sessionID] = store
	}
	return store
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.stores)
}
