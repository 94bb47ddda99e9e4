// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetUsers(c *gin.Context)
}

// ItemHandlerInterface defines the methods needed by the item routes.
type ItemHandlerInterface interface {
	GetItems(c *gin.Context)
	UpdateItem(c *gin.Context)
	SearchItems(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ ItemHandlerInterface = (*ItemHandler)(nil)
