package routes

import (
	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	controller "go-foodie-storefront/controllers"
)

func MenuRoutes(incomingRoutes *gin.Engine, cfg *config.AppConfig) {
	incomingRoutes.GET("/", controller.HomePage(cfg))
	incomingRoutes.GET("/menu", controller.MenuPage(cfg))
}
