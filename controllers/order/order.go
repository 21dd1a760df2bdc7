package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartControllers "github.com/prabhu5211/Shopping-Cart/controllers/cart"
	"github.com/prabhu5211/Shopping-Cart/middleware"
	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

type PlaceOrderInput struct {
	CartID string `json:"cart_id"`
}

// POST /api/orders
//
// Converts the caller's cart into an order: the order is inserted first,
// then the cart is flipped to ordered. The two writes are not atomic; a
// failure between them leaves an order pointing at a still-active cart.
func PlaceOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil || input.CartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart ID is required"})
			return
		}

		cartID, err := primitive.ObjectIDFromHex(input.CartID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		ctx := c.Request.Context()

		cart, err := s.GetCartByID(ctx, cartID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			log.WithError(err).Error("place order: cart lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
			return
		}

		if cart.UserID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access to cart"})
			return
		}

		if cart.Status == models.CartStatusOrdered {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart already converted to order"})
			return
		}

		cartItems, err := s.ListCartItems(ctx, cart.ID)
		if err != nil {
			log.WithError(err).Error("place order: line listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
			return
		}
		if len(cartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot create order from empty cart"})
			return
		}

		order := models.Order{
			CartID:    cart.ID,
			UserID:    user.ID,
			CreatedAt: time.Now(),
		}
		if err := s.CreateOrder(ctx, &order); err != nil {
			log.WithError(err).Error("place order: insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
			return
		}

		if err := s.SetCartStatus(ctx, cart.ID, models.CartStatusOrdered); err != nil {
			log.WithError(err).Error("place order: status flip failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
	}
}

// GET /api/orders
func GetOrders(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()

		orders, err := s.ListOrdersByUser(ctx, user.ID)
		if err != nil {
			log.WithError(err).Error("list orders failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
			return
		}

		details := make([]models.OrderDetail, 0, len(orders))
		for _, order := range orders {
			items, err := cartControllers.LoadCartItemDetails(ctx, s, order.CartID)
			if err != nil {
				log.WithError(err).Error("list orders: line join failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
				return
			}
			details = append(details, models.OrderDetail{Order: order, Items: items})
		}

		c.JSON(http.StatusOK, details)
	}
}
