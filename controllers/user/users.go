package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/prabhu5211/Shopping-Cart/auth"
	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/users
func Signup(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		ctx := c.Request.Context()

		if _, err := s.GetUserByUsername(ctx, input.Username); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Error("signup: user lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Error("signup: password hashing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}

		user := models.User{
			Username:  input.Username,
			Password:  string(hashed),
			CreatedAt: time.Now(),
		}
		if err := s.CreateUser(ctx, &user); err != nil {
			// The unique index can still reject a concurrent duplicate signup.
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			log.WithError(err).Error("signup: insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "userId": user.ID})
	}
}

// POST /api/users/login
func Login(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		ctx := c.Request.Context()

		user, err := s.GetUserByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username/password"})
				return
			}
			log.WithError(err).Error("login: user lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error during login"})
			return
		}

		// Single-session lock: a held token blocks any further login, even
		// with the right password, until the holder logs out.
		if user.Token != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are already logged in on another device."})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username/password"})
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			log.WithError(err).Error("login: token signing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error during login"})
			return
		}

		if err := s.SetUserToken(ctx, user.ID, &token); err != nil {
			log.WithError(err).Error("login: token store failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error during login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "userId": user.ID, "username": user.Username})
	}
}

// POST /api/users/logout
func Logout(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := s.SetUserToken(c.Request.Context(), user.ID, nil); err != nil {
			log.WithError(err).Error("logout: token clear failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error during logout"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /api/users
func GetAllUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("list users failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
