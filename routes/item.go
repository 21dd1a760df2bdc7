package routes

import (
	"github.com/gin-gonic/gin"

	itemControllers "github.com/prabhu5211/Shopping-Cart/controllers/item"
	"github.com/prabhu5211/Shopping-Cart/store"
)

// SetupItemRoutes registers the catalog endpoints. No auth: the catalog is
// public and item creation is an open admin operation in this demo.
func SetupItemRoutes(api *gin.RouterGroup, s store.Store) {
	items := api.Group("/items")
	{
		items.POST("", itemControllers.CreateItem(s)) // POST /api/items
		items.GET("", itemControllers.GetItems(s))    // GET  /api/items
	}
}
