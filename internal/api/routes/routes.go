package routes

import (
	"log"
	"time"

	"chimichangapp/internal/api/handlers"
	"chimichangapp/internal/app"
	"chimichangapp/internal/cache"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	searchCache := cache.NewSearchCache(app.RedisClient, time.Duration(app.Config.Redis.TTLSeconds)*time.Second)
	itemHandler := handlers.NewItemHandler(app.Repo, searchCache, app.Validator)
	userHandler := handlers.NewUserHandler(app.Repo)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler)
	RegisterItemRoutes(apiV1, itemHandler)

	// --- Root Greeting & Health Check ---
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	// Register the Swagger UI handler WITHOUT the explicit URL option.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
