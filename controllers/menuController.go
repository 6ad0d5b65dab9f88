package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/config"
	"go-foodie-storefront/helpers"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/models"
)

// menuItemView pairs a catalog item with its cart line, so the menu can
// render add buttons or quantity steppers per item.
type menuItemView struct {
	models.MenuItem
	CartItemID string
	InCart     int
}

// HomePage clears the menu slice before fetching so the landing view never
// shows stale items, then features the first six.
func HomePage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()

		sess.Menu.Clear()
		_ = sess.Menu.Fetch(c.Request.Context(), "")

		items := sess.Menu.Items()
		featured := items
		if len(featured) > 6 {
			featured = featured[:6]
		}

		c.HTML(http.StatusOK, "home.html", baseData(c, cfg, gin.H{
			"Featured":  featured,
			"MenuError": sess.Menu.Err(),
		}))
	}
}

// MenuPage renders the catalog with category filter buttons. Filter
// options come from the full unfiltered catalog, not the filtered slice,
// so picking a category never hides the other buttons.
func MenuPage(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Watch.Stop()
		ctx := c.Request.Context()

		selected := c.Query("category")

		categories, catErr := sess.API.Categories(ctx)
		allItems, itemsErr := sess.API.MenuItems(ctx, "")

		_ = sess.Menu.Fetch(ctx, selected)

		menuErr := sess.Menu.Err()
		if menuErr == "" && itemsErr != nil {
			menuErr = backend.Message(itemsErr, "Failed to fetch menu")
		}
		if menuErr == "" && catErr != nil {
			menuErr = backend.Message(catErr, "Failed to fetch categories")
		}

		profile := sess.Auth.Profile()
		canShop := sess.Auth.Authenticated() && !helpers.IsAdmin(profile)
		if canShop {
			_ = sess.Cart.Fetch(ctx)
		}

		views := make([]menuItemView, 0, len(sess.Menu.Items()))
		for _, item := range sess.Menu.Items() {
			view := menuItemView{MenuItem: item}
			if canShop {
				view.CartItemID, view.InCart = sess.Cart.Quantity(item.ID)
			}
			views = append(views, view)
		}

		heading := ""
		if selected != "" {
			heading = helpers.DisplayName(categories, selected)
		}

		c.HTML(http.StatusOK, "menu.html", baseData(c, cfg, gin.H{
			"Items":      views,
			"Options":    helpers.FilterOptions(categories, allItems),
			"Selected":   selected,
			"Heading":    heading,
			"CanShop":    canShop,
			"MenuError":  menuErr,
			"CartError":  sess.Cart.Err(),
			"BackTarget": c.Request.URL.RequestURI(),
		}))
	}
}
