package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	// Token is the single live session token. Non-nil means a login is active
	// and further logins are rejected until logout clears it.
	Token     *string             `bson:"token" json:"-"`
	CartID    *primitive.ObjectID `bson:"cart_id,omitempty" json:"cart_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// PublicUser is the listing view of a User with credentials stripped.
type PublicUser struct {
	ID        primitive.ObjectID  `bson:"_id" json:"id"`
	Username  string              `bson:"username" json:"username"`
	CartID    *primitive.ObjectID `bson:"cart_id,omitempty" json:"cart_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
