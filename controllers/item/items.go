package itemControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

type CreateItemInput struct {
	Name   string  `json:"name"`
	Image  *string `json:"image"`
	Status string  `json:"status"`
}

// POST /api/items
func CreateItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
			return
		}

		status := models.ItemStatusActive
		if input.Status != "" {
			status = models.ItemStatus(input.Status)
		}

		item := models.Item{
			Name:      input.Name,
			Image:     input.Image,
			Status:    status,
			CreatedAt: time.Now(),
		}
		if err := s.CreateItem(c.Request.Context(), &item); err != nil {
			log.WithError(err).Error("create item failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating item"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item created successfully", "item": item})
	}
}

// GET /api/items
func GetItems(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.ListItemsByStatus(c.Request.Context(), models.ItemStatusActive)
		if err != nil {
			log.WithError(err).Error("list items failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
