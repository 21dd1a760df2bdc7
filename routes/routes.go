package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabhu5211/Shopping-Cart/store"
)

// SetupRoutes is the single entry-point that wires up every API route group.
func SetupRoutes(r *gin.Engine, s store.Store) {
	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Shopping Cart API is running")
	})

	api := r.Group("/api")

	SetupUserRoutes(api, s)
	SetupItemRoutes(api, s)
	SetupCartRoutes(api, s)
	SetupOrderRoutes(api, s)
}
