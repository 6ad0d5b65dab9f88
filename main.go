package main

import (
	"html/template"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-foodie-storefront/config"
	"go-foodie-storefront/middleware"
	"go-foodie-storefront/pkg/logging"
	"go-foodie-storefront/routes"
	"go-foodie-storefront/session"
	"go-foodie-storefront/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg := config.Load()
	logging.Setup(cfg.LogMode, cfg.LogFile)
	defer zap.L().Sync()

	creds, err := storage.Open(cfg.StateDB)
	if err != nil {
		zap.S().Fatalf("open credential store: %v", err)
	}
	defer creds.Close()

	manager := session.NewManager(cfg, creds)

	if cfg.LogMode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:" + cfg.Port},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.SetFuncMap(template.FuncMap{
		"mulf": func(price float64, qty int) float64 { return price * float64(qty) },
	})
	router.LoadHTMLGlob("templates/*.html")

	router.Use(middleware.Session(manager))

	routes.MenuRoutes(router, cfg)
	routes.UserRoutes(router, cfg)
	routes.CartRoutes(router, cfg)
	routes.OrderRoutes(router, cfg)
	routes.AdminRoutes(router, cfg)

	zap.S().Infow("storefront listening", "port", cfg.Port, "backend", cfg.BackendURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalf("server exited: %v", err)
	}
}
