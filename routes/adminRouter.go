package routes

import (
	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	controller "go-foodie-storefront/controllers"
	"go-foodie-storefront/middleware"
)

func AdminRoutes(incomingRoutes *gin.Engine, cfg *config.AppConfig) {
	admin := incomingRoutes.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", controller.AdminDashboard(cfg))

		admin.GET("/orders", controller.AdminOrdersPage(cfg))
		admin.POST("/orders/:id/status", controller.AdminOrderStatus(cfg))

		admin.GET("/menu", controller.AdminMenuPage(cfg))
		admin.POST("/menu", controller.AdminMenuCreate(cfg))
		admin.POST("/menu/:id", controller.AdminMenuUpdate(cfg))
		admin.POST("/menu/:id/delete", controller.AdminMenuDelete(cfg))

		admin.POST("/categories", controller.AdminCategoryCreate(cfg))
		admin.POST("/categories/:id/delete", controller.AdminCategoryDelete(cfg))

		admin.GET("/users", controller.AdminUsersPage(cfg))
		admin.POST("/users", controller.AdminUserCreate(cfg))
	}
}
