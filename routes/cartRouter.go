package routes

import (
	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	controller "go-foodie-storefront/controllers"
	"go-foodie-storefront/middleware"
)

func CartRoutes(incomingRoutes *gin.Engine, cfg *config.AppConfig) {
	cart := incomingRoutes.Group("/cart", middleware.RequireAuth())
	{
		cart.GET("", controller.CartPage(cfg))
		cart.POST("/add", controller.CartAdd(cfg))
		cart.POST("/update/:id", controller.CartUpdate(cfg))
		cart.POST("/remove/:id", controller.CartRemove(cfg))
	}

	checkout := incomingRoutes.Group("/checkout", middleware.RequireAuth())
	{
		checkout.GET("", controller.CheckoutPage(cfg))
		checkout.POST("", controller.Checkout(cfg))
	}
}
