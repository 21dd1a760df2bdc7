package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartStatus string

const (
	CartStatusActive  CartStatus = "active"  // Current shopping basket
	CartStatusOrdered CartStatus = "ordered" // Converted to an order; terminal
)

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	Status    CartStatus         `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CartID   primitive.ObjectID `bson:"cart_id" json:"cart_id"`
	ItemID   primitive.ObjectID `bson:"item_id" json:"item_id"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// CartItemDetail is a CartItem joined with its Item for read views.
type CartItemDetail struct {
	ID       primitive.ObjectID `json:"id"`
	CartID   primitive.ObjectID `json:"cart_id"`
	Item     Item               `json:"item"`
	Quantity int                `json:"quantity"`
}
