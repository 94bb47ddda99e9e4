package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"chimichangapp/config"
	"chimichangapp/internal/app"
	"chimichangapp/internal/catalog"
	"chimichangapp/internal/database"
	"chimichangapp/internal/server"

	_ "chimichangapp/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// @title           ChimichangApp
// @version         0.0.1
// @description     ChimichangApp API helps you do awesome stuff.
// @termsOfService  http://example.com/terms/

// @contact.name   Deadpoolio the Amazing
// @contact.url    http://x-force.example.com/contact/
// @contact.email  dp@x-force.example.com

// @license.name  Apache 2.0
// @license.url   https://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @tag.name users
// @tag.description Operations with users. The **login** logic is also here.
// @tag.name items
// @tag.description Manage items. So _fancy_ they have their own docs.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client (optional search cache) ---
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("WARN: Failed to connect to Redis: %v. Continuing without search cache.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	} else {
		log.Println("Redis address not configured, skipping search cache initialization.")
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		Repo:        catalog.NewMemoryRepo(),
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
