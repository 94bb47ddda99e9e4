package routes

import (
	"chimichangapp/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to users
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface) {
	users := rg.Group("/users")
	{
		users.GET("/", userHandler.GetUsers)
	}
}
