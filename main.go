package main

import (
	"log"

	"cafe-storefront/config"
	_ "cafe-storefront/docs"
	"cafe-storefront/middleware"
	"cafe-storefront/routes"

	"github.com/gin-gonic/gin"
)

// @title Cafe Storefront API
// @version 1.0
// @description Customer-facing ordering flow for a small café: menu, cart, checkout, and messenger dispatch.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
