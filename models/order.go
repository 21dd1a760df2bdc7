package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the permanent record of a converted cart. It only references the
// cart; the item view is re-joined from the cart's lines at read time.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CartID    primitive.ObjectID `bson:"cart_id" json:"cart_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// OrderDetail is an Order annotated with its reconstructed item lines.
type OrderDetail struct {
	Order
	Items []CartItemDetail `json:"items"`
}
