package store

import (
	"context"
	"sync"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/models"
)

// Menu holds the catalog slice currently on display. It has no lifecycle
// beyond "last fetch wins" and no write operations.
type Menu struct {
	mu      sync.RWMutex
	api     *backend.Client
	items   []models.MenuItem
	loading bool
	lastErr string
}

func NewMenu(api *backend.Client) *Menu {
	return &Menu{api: api}
}

// Fetch replaces the slice with the filtered or unfiltered catalog.
func (m *Menu) Fetch(ctx context.Context, category string) error {
	m.mu.Lock()
	m.loading = true
	m.lastErr = ""
	m.mu.Unlock()

	items, err := m.api.MenuItems(ctx, category)
	if err != nil {
		m.mu.Lock()
		m.loading = false
		m.lastErr = backend.Message(err, "Failed to fetch menu")
		m.mu.Unlock()
		return err
	}
	m.mu.Lock()
	m.items = items
	m.loading = false
	m.mu.Unlock()
	return nil
}

// Clear empties the slice so a landing view never shows stale items while
// a fresh fetch is in flight.
func (m *Menu) Clear() {
	m.mu.Lock()
	m.items = nil
	m.lastErr = ""
	m.mu.Unlock()
}

func (m *Menu) Items() []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Menu) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Menu) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}
