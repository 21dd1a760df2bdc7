package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/prabhu5211/Shopping-Cart/controllers/order"
	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/store"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints. JWT-protected.
func SetupOrderRoutes(api *gin.RouterGroup, s store.Store) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(s))
	{
		orders.POST("", orderControllers.PlaceOrder(s)) // POST /api/orders
		orders.GET("", orderControllers.GetOrders(s))   // GET  /api/orders
	}
}
