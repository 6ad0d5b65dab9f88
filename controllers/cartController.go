package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/config"
	"go-foodie-storefront/helpers"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/models"
)

// blockAdminCart rejects cart mutations from admin accounts. Returns true
// when the request was handled.
func blockAdminCart(c *gin.Context) bool {
	sess := middleware.Current(c)
	if helpers.IsAdmin(sess.Auth.Profile()) {
		redirectWithErr(c, backTo(c), "Admin users cannot modify the cart")
		return true
	}
	return false
}

func CartPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()

		if helpers.IsAdmin(sess.Auth.Profile()) {
			c.Redirect(http.StatusSeeOther, "/admin")
			return
		}

		_ = sess.Cart.Fetch(c.Request.Context())

		c.HTML(http.StatusOK, "cart.html", baseData(c, cfg, gin.H{
			"Items":     sess.Cart.Items(),
			"Subtotal":  sess.Cart.Subtotal(),
			"Total":     sess.Cart.Subtotal() + cfg.DeliveryFee,
			"CartError": sess.Cart.Err(),
		}))
	}
}

func CartAdd(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if blockAdminCart(c) {
			return
		}
		sess := middleware.Current(c)
		menuItemID := c.PostForm("menuItemId")
		if menuItemID == "" {
			redirectWithErr(c, backTo(c), "Missing menu item")
			return
		}
		if err := sess.Cart.Add(c.Request.Context(), menuItemID, 1); err != nil {
			zap.L().Warn("cart add failed", zap.String("menuItem", menuItemID), zap.Error(err))
			redirectWithErr(c, backTo(c), sess.Cart.Err())
			return
		}
		redirectWithOK(c, backTo(c), "Added to cart")
	}
}

// CartUpdate sets a line's quantity. Zero or less removes the line, same
// as pressing remove.
func CartUpdate(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if blockAdminCart(c) {
			return
		}
		sess := middleware.Current(c)
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			redirectWithErr(c, backTo(c), "Invalid quantity")
			return
		}
		if err := sess.Cart.Update(c.Request.Context(), c.Param("id"), quantity); err != nil {
			redirectWithErr(c, backTo(c), sess.Cart.Err())
			return
		}
		c.Redirect(http.StatusSeeOther, backTo(c))
	}
}

func CartRemove(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if blockAdminCart(c) {
			return
		}
		sess := middleware.Current(c)
		if err := sess.Cart.Remove(c.Request.Context(), c.Param("id")); err != nil {
			redirectWithErr(c, backTo(c), sess.Cart.Err())
			return
		}
		c.Redirect(http.StatusSeeOther, backTo(c))
	}
}

func CheckoutPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()

		if helpers.IsAdmin(sess.Auth.Profile()) {
			c.Redirect(http.StatusSeeOther, "/admin")
			return
		}

		_ = sess.Cart.Fetch(c.Request.Context())
		if len(sess.Cart.Items()) == 0 {
			redirectWithErr(c, "/menu", "Your cart is empty")
			return
		}

		profile := sess.Auth.Profile()
		c.HTML(http.StatusOK, "checkout.html", baseData(c, cfg, gin.H{
			"Items":    sess.Cart.Items(),
			"Subtotal": sess.Cart.Subtotal(),
			"Total":    sess.Cart.Subtotal() + cfg.DeliveryFee,
			"Address":  profile.Address,
			"Phone":    profile.Phone,
		}))
	}
}

// Checkout places the order from the server-side cart. On success the
// local cart mirror is dropped; the backend has already emptied its copy.
func Checkout(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if blockAdminCart(c) {
			return
		}
		sess := middleware.Current(c)

		var form models.CheckoutForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithErr(c, "/checkout", "Please fill in delivery address and phone")
			return
		}
		if err := validate.Struct(&form); err != nil {
			redirectWithErr(c, "/checkout", validationMessage(err))
			return
		}

		order, err := sess.API.CreateOrderDirect(c.Request.Context(), form)
		if err != nil {
			zap.L().Warn("checkout failed", zap.Error(err))
			redirectWithErr(c, "/checkout", backend.Message(err, "Failed to create order. Please try again."))
			return
		}

		sess.Cart.ClearLocal()
		zap.L().Info("order placed", zap.String("order", order.ID))
		redirectWithOK(c, "/orders", "Payment Done! Order placed successfully.")
	}
}
