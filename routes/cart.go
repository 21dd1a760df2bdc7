package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/prabhu5211/Shopping-Cart/controllers/cart"
	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/store"
)

// SetupCartRoutes registers all "/api/carts/*" endpoints. JWT-protected.
func SetupCartRoutes(api *gin.RouterGroup, s store.Store) {
	carts := api.Group("/carts")
	carts.Use(middleware.ValidateToken(s))
	{
		carts.POST("", cartControllers.AddToCart(s))                    // POST   /api/carts
		carts.GET("", cartControllers.GetCart(s))                       // GET    /api/carts
		carts.PUT("/:cartItemId", cartControllers.UpdateQuantity(s))    // PUT    /api/carts/:cartItemId
		carts.DELETE("/:cartItemId", cartControllers.DeleteCartItem(s)) // DELETE /api/carts/:cartItemId
	}
}
