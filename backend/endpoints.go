package backend

import (
	"context"
	"net/http"
	"net/url"

	"go-foodie-storefront/models"
)

// Auth ------------------------------------------------------------------

// Register and Login are the only anonymous calls: no stale credential is
// ever attached to them, and their failures never clear stored state.

func (c *Client) Register(ctx context.Context, form models.RegisterForm) (*models.Credential, error) {
	var cred models.Credential
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, form, &cred, true); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (c *Client) Login(ctx context.Context, form models.LoginForm) (*models.Credential, error) {
	var cred models.Credential
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, form, &cred, true); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (c *Client) Me(ctx context.Context) (*models.Profile, error) {
	var resp struct {
		User models.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Catalog ---------------------------------------------------------------

func (c *Client) MenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", query, nil, &items, true); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/menu/categories", nil, nil, &categories, true); err != nil {
		return nil, err
	}
	return categories, nil
}

// Cart ------------------------------------------------------------------

// Every cart mutation returns the canonical cart; callers replace their
// local copy with it wholesale.

func (c *Client) CartGet(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) CartAdd(ctx context.Context, menuItemID string, quantity int) (*models.Cart, error) {
	body := map[string]interface{}{"menuItemId": menuItemID, "quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add", nil, body, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) CartUpdate(ctx context.Context, itemID string, quantity int) (*models.Cart, error) {
	body := map[string]interface{}{"quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, "/cart/update/"+url.PathEscape(itemID), nil, body, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) CartRemove(ctx context.Context, itemID string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/remove/"+url.PathEscape(itemID), nil, nil, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) CartClear(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil, nil, false)
}

// Orders ----------------------------------------------------------------

func (c *Client) CreateOrderDirect(ctx context.Context, form models.CheckoutForm) (*models.Order, error) {
	var resp struct {
		Message string       `json:"message"`
		Order   models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/create-direct", nil, form, &resp, false); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", nil, nil, &orders, false); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &order, false); err != nil {
		return nil, err
	}
	return &order, nil
}

// Admin -----------------------------------------------------------------

func (c *Client) AdminStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats, false); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminOrders(ctx context.Context, status string) ([]models.Order, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", query, nil, &orders, false); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, orderID, status string) error {
	body := map[string]string{"orderStatus": status}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/status", nil, body, nil, false)
}

func (c *Client) AdminMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/admin/menu", nil, nil, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AdminCreateMenuItem(ctx context.Context, form models.MenuItemForm) error {
	return c.do(ctx, http.MethodPost, "/admin/menu", nil, form, nil, false)
}

func (c *Client) AdminUpdateMenuItem(ctx context.Context, id string, form models.MenuItemForm) error {
	return c.do(ctx, http.MethodPut, "/admin/menu/"+url.PathEscape(id), nil, form, nil, false)
}

func (c *Client) AdminDeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/menu/"+url.PathEscape(id), nil, nil, nil, false)
}

func (c *Client) AdminCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/admin/categories", nil, nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) AdminCreateCategory(ctx context.Context, form models.CategoryForm) error {
	return c.do(ctx, http.MethodPost, "/admin/categories", nil, form, nil, false)
}

func (c *Client) AdminDeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+url.PathEscape(id), nil, nil, nil, false)
}

func (c *Client) AdminListAdmins(ctx context.Context) ([]models.Profile, error) {
	var admins []models.Profile
	if err := c.do(ctx, http.MethodGet, "/admin/admins", nil, nil, &admins, false); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) AdminCreateAdmin(ctx context.Context, form models.AdminUserForm) error {
	return c.do(ctx, http.MethodPost, "/admin/create-admin", nil, form, nil, false)
}
