package session

import (
	"sync"
	"time"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/models"
	"go-foodie-storefront/store"
	"go-foodie-storefront/watch"
)

// Session is one browser's view of the world: the three state containers,
// plus the local fetch state the order and admin screens keep for
// themselves instead of sharing a container.
type Session struct {
	ID    string
	Auth  *store.Auth
	Cart  *store.Cart
	Menu  *store.Menu
	API   *backend.Client
	Watch *watch.Watcher

	mu              sync.RWMutex
	lastSeen        time.Time
	myOrders        []models.Order
	myOrdersErr     string
	currentOrderID  string
	currentOrder    *models.Order
	currentOrderErr string
	adminOrders     []models.Order
	adminOrdersErr  string
}

// Touch records activity so the idle sweeper leaves the session alone.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// Order-history fetch state. A failed refresh keeps the previous data and
// records the message; a successful one replaces the data and clears it.

func (s *Session) SetMyOrders(orders []models.Order) {
	s.mu.Lock()
	s.myOrders = orders
	s.myOrdersErr = ""
	s.mu.Unlock()
}

func (s *Session) SetMyOrdersErr(msg string) {
	s.mu.Lock()
	s.myOrdersErr = msg
	s.mu.Unlock()
}

func (s *Session) MyOrders() ([]models.Order, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.myOrders))
	copy(out, s.myOrders)
	return out, s.myOrdersErr
}

// The detail slot holds exactly one order, keyed by the id it was fetched
// for. A failed fetch for a different id drops the cached order rather than
// letting it render under the wrong URL.

func (s *Session) SetCurrentOrder(id string, order *models.Order) {
	s.mu.Lock()
	s.currentOrderID = id
	s.currentOrder = order
	s.currentOrderErr = ""
	s.mu.Unlock()
}

func (s *Session) SetCurrentOrderErr(id, msg string) {
	s.mu.Lock()
	if s.currentOrderID != id {
		s.currentOrderID = id
		s.currentOrder = nil
	}
	s.currentOrderErr = msg
	s.mu.Unlock()
}

func (s *Session) CurrentOrder(id string) (*models.Order, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentOrderID != id {
		return nil, ""
	}
	return s.currentOrder, s.currentOrderErr
}

func (s *Session) SetAdminOrders(orders []models.Order) {
	s.mu.Lock()
	s.adminOrders = orders
	s.adminOrdersErr = ""
	s.mu.Unlock()
}

func (s *Session) SetAdminOrdersErr(msg string) {
	s.mu.Lock()
	s.adminOrdersErr = msg
	s.mu.Unlock()
}

func (s *Session) AdminOrders() ([]models.Order, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.adminOrders))
	copy(out, s.adminOrders)
	return out, s.adminOrdersErr
}
