package routes

import (
	"github.com/gin-gonic/gin"

	"go-foodie-storefront/config"
	controller "go-foodie-storefront/controllers"
)

func UserRoutes(incomingRoutes *gin.Engine, cfg *config.AppConfig) {
	incomingRoutes.GET("/login", controller.LoginPage(cfg))
	incomingRoutes.POST("/login", controller.Login(cfg))
	incomingRoutes.GET("/register", controller.RegisterPage(cfg))
	incomingRoutes.POST("/register", controller.Register(cfg))
	incomingRoutes.POST("/logout", controller.Logout())
}
