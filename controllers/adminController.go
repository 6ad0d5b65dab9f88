package controllers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/config"
	"go-foodie-storefront/helpers"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/models"
	"go-foodie-storefront/session"
)

// requireSuperAdmin guards the screens the base admin role cannot use.
// Returns true when the request was bounced.
func requireSuperAdmin(c *gin.Context, cfg *config.AppConfig) bool {
	sess := middleware.Current(c)
	if !helpers.IsSuperAdmin(sess.Auth.Profile(), cfg.SuperAdminEmail) {
		redirectWithErr(c, "/admin", "Only the super admin can do that")
		return true
	}
	return false
}

func AdminDashboard(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()

		stats, err := sess.API.AdminStats(c.Request.Context())
		statsErr := ""
		if err != nil {
			statsErr = backend.Message(err, "Failed to fetch dashboard stats")
			stats = &models.Stats{}
		}

		c.HTML(http.StatusOK, "admin_dashboard.html", baseData(c, cfg, gin.H{
			"Stats":      stats,
			"StatsError": statsErr,
		}))
	}
}

// AdminOrdersPage lists every order, optionally filtered by status, and
// polls for changes while it stays the active page.
func AdminOrdersPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		status := c.Query("status")

		refresh := adminOrdersRefresh(sess, status)
		sess.Watch.Mount("admin-orders:"+status, refresh)
		refresh()

		orders, fetchErr := sess.AdminOrders()

		c.HTML(http.StatusOK, "admin_orders.html", baseData(c, cfg, gin.H{
			"Orders":      buildOrderViews(orders, cfg.DeliveryFee),
			"Selected":    status,
			"Statuses":    helpers.AllStatuses,
			"OrdersError": fetchErr,
			"Refresh":     true,
		}))
	}
}

func adminOrdersRefresh(sess *session.Session, status string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		orders, err := sess.API.AdminOrders(ctx, status)
		if err != nil {
			sess.SetAdminOrdersErr(backend.Message(err, "Failed to fetch orders"))
			return
		}
		sess.SetAdminOrders(orders)
	}
}

// AdminOrderStatus moves an order along the progression. The status value
// is checked locally before the backend sees it.
func AdminOrderStatus(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		back := "/admin/orders"
		if filter := c.PostForm("filter"); filter != "" {
			back += "?status=" + url.QueryEscape(filter)
		}

		var form models.StatusUpdateForm
		if err := c.ShouldBind(&form); err != nil || !helpers.IsValidStatus(form.OrderStatus) {
			redirectWithErr(c, back, "Invalid order status")
			return
		}
		if err := sess.API.AdminUpdateOrderStatus(c.Request.Context(), c.Param("id"), form.OrderStatus); err != nil {
			redirectWithErr(c, back, backend.Message(err, "Failed to update order status"))
			return
		}
		zap.L().Info("order status updated",
			zap.String("order", c.Param("id")),
			zap.String("status", form.OrderStatus))
		redirectWithOK(c, back, "Order status updated")
	}
}

func AdminMenuPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()
		ctx := c.Request.Context()

		items, itemsErr := sess.API.AdminMenuItems(ctx)
		categories, _ := sess.API.AdminCategories(ctx)

		menuErr := ""
		if itemsErr != nil {
			menuErr = backend.Message(itemsErr, "Failed to fetch menu items")
		}

		c.HTML(http.StatusOK, "admin_menu.html", baseData(c, cfg, gin.H{
			"Items":      items,
			"Categories": categories,
			"MenuError":  menuErr,
		}))
	}
}

func AdminMenuCreate(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		var form models.MenuItemForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/admin/menu", "Please fill in all menu item fields")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/admin/menu", validationMessage(err))
			return
		}
		if err := sess.API.AdminCreateMenuItem(c.Request.Context(), form); err != nil {
			redirectWithErr(c, "/admin/menu", backend.Message(err, "Failed to create menu item"))
			return
		}
		redirectWithOK(c, "/admin/menu", "Menu item created")
	}
}

func AdminMenuUpdate(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		var form models.MenuItemForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/admin/menu", "Please fill in all menu item fields")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/admin/menu", validationMessage(err))
			return
		}
		if err := sess.API.AdminUpdateMenuItem(c.Request.Context(), c.Param("id"), form); err != nil {
			redirectWithErr(c, "/admin/menu", backend.Message(err, "Failed to update menu item"))
			return
		}
		redirectWithOK(c, "/admin/menu", "Menu item updated")
	}
}

func AdminMenuDelete(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if err := sess.API.AdminDeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
			redirectWithErr(c, "/admin/menu", backend.Message(err, "Failed to delete menu item"))
			return
		}
		redirectWithOK(c, "/admin/menu", "Menu item deleted")
	}
}

func AdminCategoryCreate(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requireSuperAdmin(c, cfg) {
			return
		}
		sess := middleware.Current(c)
		var form models.CategoryForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/admin/menu", "Please fill in both category fields")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/admin/menu", validationMessage(err))
			return
		}
		if err := sess.API.AdminCreateCategory(c.Request.Context(), form); err != nil {
			redirectWithErr(c, "/admin/menu", backend.Message(err, "Failed to create category"))
			return
		}
		redirectWithOK(c, "/admin/menu", "Category created")
	}
}

func AdminCategoryDelete(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requireSuperAdmin(c, cfg) {
			return
		}
		sess := middleware.Current(c)
		if err := sess.API.AdminDeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			redirectWithErr(c, "/admin/menu", backend.Message(err, "Failed to delete category"))
			return
		}
		redirectWithOK(c, "/admin/menu", "Category deleted")
	}
}

func AdminUsersPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requireSuperAdmin(c, cfg) {
			return
		}
		sess := middleware.Current(c)
		sess.Watch.Stop()

		admins, err := sess.API.AdminListAdmins(c.Request.Context())
		listErr := ""
		if err != nil {
			listErr = backend.Message(err, "Failed to fetch admin users")
		}

		c.HTML(http.StatusOK, "admin_users.html", baseData(c, cfg, gin.H{
			"Admins":      admins,
			"AdminsError": listErr,
		}))
	}
}

func AdminUserCreate(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requireSuperAdmin(c, cfg) {
			return
		}
		sess := middleware.Current(c)
		var form models.AdminUserForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/admin/users", "Please fill in all fields")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/admin/users", validationMessage(err))
			return
		}
		if err := sess.API.AdminCreateAdmin(c.Request.Context(), form); err != nil {
			redirectWithErr(c, "/admin/users", backend.Message(err, "Failed to create admin"))
			return
		}
		redirectWithOK(c, "/admin/users", "Admin user created")
	}
}
