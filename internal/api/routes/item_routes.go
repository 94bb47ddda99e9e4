package routes

import (
	"chimichangapp/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers all routes related to items
func RegisterItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ItemHandlerInterface) {

	// Define the sub-group for items (e.g., /api/v1/items)
	items := rg.Group("/items")
	{
		items.GET("/", itemHandler.GetItems)
		items.PUT("/:item_id", itemHandler.UpdateItem)
	}

	// The search endpoint lives beside the items group rather than inside it.
	rg.GET("/new_items/", itemHandler.SearchItems)
}
