package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/prabhu5211/Shopping-Cart/controllers/user"
	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/store"
)

// SetupUserRoutes registers all "/api/users/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, s store.Store) {
	users := api.Group("/users")
	{
		users.POST("", userControllers.Signup(s))      // POST /api/users
		users.POST("/login", userControllers.Login(s)) // POST /api/users/login
		users.GET("", userControllers.GetAllUsers(s))  // GET  /api/users

		users.POST("/logout", middleware.ValidateToken(s), userControllers.Logout(s)) // POST /api/users/logout
	}
}
