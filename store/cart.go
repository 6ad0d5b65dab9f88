package store

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/models"
)

// ErrNoCredential is the local guard error raised before any cart call is
// attempted without a signed-in user.
var ErrNoCredential = errors.New("please login first")

// Cart mirrors the server's cart and nothing more: every successful call
// replaces items and subtotal wholesale with the response, so local state
// never diverges from server-computed pricing.
type Cart struct {
	mu      sync.RWMutex
	api     *backend.Client
	tokens  backend.TokenSource
	items   []models.CartItem
	total   float64
	loading bool
	lastErr string
}

func NewCart(api *backend.Client, tokens backend.TokenSource) *Cart {
	return &Cart{api: api, tokens: tokens}
}

func (c *Cart) Fetch(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.begin()
	cart, err := c.api.CartGet(ctx)
	if err != nil {
		c.fail(backend.Message(err, "Failed to fetch cart"))
		return err
	}
	c.apply(cart)
	return nil
}

func (c *Cart) Add(ctx context.Context, menuItemID string, quantity int) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.begin()
	cart, err := c.api.CartAdd(ctx, menuItemID, quantity)
	if err != nil {
		c.fail(backend.Message(err, "Failed to add to cart"))
		return err
	}
	c.apply(cart)
	return nil
}

// Update changes a line's quantity. A quantity of zero or below means the
// line goes away, so it is routed to Remove instead of sent as an update.
func (c *Cart) Update(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(ctx, itemID)
	}
	if err := c.guard(); err != nil {
		return err
	}
	c.begin()
	cart, err := c.api.CartUpdate(ctx, itemID, quantity)
	if err != nil {
		c.fail(backend.Message(err, "Failed to update cart"))
		return err
	}
	c.apply(cart)
	return nil
}

func (c *Cart) Remove(ctx context.Context, itemID string) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.begin()
	cart, err := c.api.CartRemove(ctx, itemID)
	if err != nil {
		c.fail(backend.Message(err, "Failed to remove from cart"))
		return err
	}
	c.apply(cart)
	return nil
}

// ClearLocal empties the slice without a network call; used right after a
// successful checkout, when the backend has already consumed the cart.
func (c *Cart) ClearLocal() {
	c.mu.Lock()
	c.items = nil
	c.total = 0
	c.lastErr = ""
	c.mu.Unlock()
}

func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is whatever the last server response said; it is never
// recomputed from the lines.
func (c *Cart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.total
}

// Count is the badge number: total quantity across lines.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Quantity returns the cart line (id, quantity) holding a menu item, or
// empty values when the item is not in the cart.
func (c *Cart) Quantity(menuItemID string) (string, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.MenuItem.ID == menuItemID {
			return item.ID, item.Quantity
		}
	}
	return "", 0
}

func (c *Cart) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Cart) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Cart) guard() error {
	if c.tokens.Token() == "" {
		c.fail(ErrNoCredential.Error())
		return ErrNoCredential
	}
	return nil
}

func (c *Cart) begin() {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
}

func (c *Cart) fail(msg string) {
	c.mu.Lock()
	c.loading = false
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Cart) apply(cart *models.Cart) {
	c.mu.Lock()
	c.items = cart.Items
	c.total = cart.TotalAmount
	c.loading = false
	c.lastErr = ""
	c.mu.Unlock()
}
