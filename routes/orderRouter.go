package routes

import (
	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	controller "go-foodie-storefront/controllers"
	"go-foodie-storefront/middleware"
)

func OrderRoutes(incomingRoutes *gin.Engine, cfg *config.AppConfig) {
	orders := incomingRoutes.Group("/orders", middleware.RequireAuth())
	{
		orders.GET("", controller.OrdersPage(cfg))
		orders.GET("/:id", controller.OrderDetailPage(cfg))
	}
}
