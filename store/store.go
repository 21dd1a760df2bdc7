// Package store abstracts the document database behind the handlers so the
// same logic runs against MongoDB in production and an in-process map store
// in tests and development.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prabhu5211/Shopping-Cart/models"
)

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means a uniqueness rule rejected the write.
	ErrDuplicate = errors.New("store: duplicate")
)

type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// SetUserToken overwrites the session token; nil clears it.
	SetUserToken(ctx context.Context, id primitive.ObjectID, token *string) error
	SetUserCart(ctx context.Context, userID, cartID primitive.ObjectID) error
	ListUsers(ctx context.Context) ([]models.PublicUser, error)

	// Items
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	ListItemsByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error)

	// Carts
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	FindActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	SetCartStatus(ctx context.Context, id primitive.ObjectID, status models.CartStatus) error

	// Cart items
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	GetCartItemByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	FindCartItem(ctx context.Context, cartID, itemID primitive.ObjectID) (*models.CartItem, error)
	ListCartItems(ctx context.Context, cartID primitive.ObjectID) ([]models.CartItem, error)
	SetCartItemQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error
	DeleteCartItem(ctx context.Context, id primitive.ObjectID) error

	// Orders
	CreateOrder(ctx context.Context, order *models.Order) error
	// ListOrdersByUser returns the caller's orders, most recent first.
	ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)

	// Reset wipes every collection. Seeding only.
	Reset(ctx context.Context) error
}
