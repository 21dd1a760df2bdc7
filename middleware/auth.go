package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prabhu5211/Shopping-Cart/auth"
	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

// ContextUser is the key the authenticated *models.User is stored under.
const ContextUser = "user"

// ValidateToken authenticates the bearer token and loads the caller. A token
// that verifies cryptographically but no longer matches the one stored on the
// user record (logged out or superseded) is rejected: the record is the
// single source of truth for the live session.
func ValidateToken(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided. Please authenticate."})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := auth.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := s.GetUserByID(c.Request.Context(), userID)
		if err != nil || user.Token == nil || *user.Token != tokenString {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or session expired."})
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser fetches the user placed in the context by ValidateToken.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
