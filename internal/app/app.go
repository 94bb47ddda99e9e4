// internal/app/app.go (or similar package)
package app

import (
	"chimichangapp/config"
	"chimichangapp/internal/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Repo        catalog.Repository
	RedisClient *redis.Client // nil when the search cache is not configured
	Validator   *validator.Validate
}
