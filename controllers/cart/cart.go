package cartControllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

type AddToCartInput struct {
	ItemID string `json:"item_id"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// POST /api/carts
func AddToCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
			return
		}

		itemID, err := primitive.ObjectIDFromHex(input.ItemID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		ctx := c.Request.Context()

		if _, err := s.GetItemByID(ctx, itemID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			log.WithError(err).Error("add to cart: item lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
			return
		}

		// Find-or-create is two store calls; two racing first adds from the
		// same user can each create an active cart.
		cart, err := s.FindActiveCart(ctx, user.ID)
		if errors.Is(err, store.ErrNotFound) {
			cart = &models.Cart{
				UserID:    user.ID,
				Name:      "My Cart",
				Status:    models.CartStatusActive,
				CreatedAt: time.Now(),
			}
			if err := s.CreateCart(ctx, cart); err != nil {
				log.WithError(err).Error("add to cart: cart create failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
				return
			}
			// Informational back-reference only; nothing authorizes against it.
			if err := s.SetUserCart(ctx, user.ID, cart.ID); err != nil {
				log.WithError(err).Error("add to cart: user cart reference update failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
				return
			}
		} else if err != nil {
			log.WithError(err).Error("add to cart: cart lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
			return
		}

		if _, err := s.FindCartItem(ctx, cart.ID, itemID); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item already in cart"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Error("add to cart: line lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
			return
		}

		cartItem := models.CartItem{
			CartID:   cart.ID,
			ItemID:   itemID,
			Quantity: 1,
		}
		if err := s.CreateCartItem(ctx, &cartItem); err != nil {
			log.WithError(err).Error("add to cart: line insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart": cart, "cartItem": cartItem})
	}
}

// GET /api/carts
func GetCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()

		cart, err := s.FindActiveCart(ctx, user.ID)
		if errors.Is(err, store.ErrNotFound) {
			// Reading never creates a cart.
			c.JSON(http.StatusOK, gin.H{"cart": nil, "items": []models.CartItemDetail{}})
			return
		} else if err != nil {
			log.WithError(err).Error("get cart: cart lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cart"})
			return
		}

		items, err := LoadCartItemDetails(ctx, s, cart.ID)
		if err != nil {
			log.WithError(err).Error("get cart: line join failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart, "items": items})
	}
}

// PUT /api/carts/:cartItemId
func UpdateQuantity(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		ctx := c.Request.Context()

		cartItem, status, errMsg := resolveOwnedCartItem(ctx, s, user, c.Param("cartItemId"))
		if errMsg != "" {
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if err := s.SetCartItemQuantity(ctx, cartItem.ID, input.Quantity); err != nil {
			log.WithError(err).Error("update quantity failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating quantity"})
			return
		}

		cartItem.Quantity = input.Quantity
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "cartItem": cartItem})
	}
}

// DELETE /api/carts/:cartItemId
func DeleteCartItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()

		cartItem, status, errMsg := resolveOwnedCartItem(ctx, s, user, c.Param("cartItemId"))
		if errMsg != "" {
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if err := s.DeleteCartItem(ctx, cartItem.ID); err != nil {
			log.WithError(err).Error("remove cart item failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// resolveOwnedCartItem loads a cart line by path parameter and verifies the
// cart it belongs to is the caller's. Returns a status and message on failure.
func resolveOwnedCartItem(ctx context.Context, s store.Store, user *models.User, rawID string) (*models.CartItem, int, string) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, http.StatusNotFound, "Cart item not found"
	}

	cartItem, err := s.GetCartItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, http.StatusNotFound, "Cart item not found"
		}
		log.WithError(err).Error("cart line lookup failed")
		return nil, http.StatusInternalServerError, "Error fetching cart item"
	}

	cart, err := s.GetCartByID(ctx, cartItem.CartID)
	if err != nil {
		log.WithError(err).Error("cart lookup failed")
		return nil, http.StatusInternalServerError, "Error fetching cart item"
	}
	if cart.UserID != user.ID {
		return nil, http.StatusForbidden, "Unauthorized"
	}
	return cartItem, 0, ""
}

// LoadCartItemDetails joins a cart's lines with their items. Quantity falls
// back to 1 for records written before quantities existed. Order history
// reuses this, so it always reflects the current item documents.
func LoadCartItemDetails(ctx context.Context, s store.Store, cartID primitive.ObjectID) ([]models.CartItemDetail, error) {
	cartItems, err := s.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, err
	}

	details := make([]models.CartItemDetail, 0, len(cartItems))
	for _, ci := range cartItems {
		detail := models.CartItemDetail{
			ID:       ci.ID,
			CartID:   ci.CartID,
			Quantity: ci.Quantity,
		}
		if detail.Quantity < 1 {
			detail.Quantity = 1
		}

		item, err := s.GetItemByID(ctx, ci.ItemID)
		if err == nil {
			detail.Item = *item
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}
