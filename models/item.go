package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"   // Listed in the catalog
	ItemStatusInactive ItemStatus = "inactive" // Hidden from listings, never deleted
)

type Item struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     *string            `bson:"image" json:"image"`
	Status    ItemStatus         `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
