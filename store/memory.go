package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prabhu5211/Shopping-Cart/models"
)

// memoryStore keeps everything in maps behind one mutex. It backs the
// MEMORY_DB development mode and the handler tests.
type memoryStore struct {
	mu        sync.Mutex
	users     map[primitive.ObjectID]*models.User
	items     map[primitive.ObjectID]*models.Item
	carts     map[primitive.ObjectID]*models.Cart
	cartItems map[primitive.ObjectID]*models.CartItem
	orders    map[primitive.ObjectID]*models.Order
}

func NewMemory() Store {
	s := &memoryStore{}
	s.reset()
	return s
}

func (s *memoryStore) reset() {
	s.users = make(map[primitive.ObjectID]*models.User)
	s.items = make(map[primitive.ObjectID]*models.Item)
	s.carts = make(map[primitive.ObjectID]*models.Cart)
	s.cartItems = make(map[primitive.ObjectID]*models.CartItem)
	s.orders = make(map[primitive.ObjectID]*models.Order)
}

// ---------------- Users ----------------

func (s *memoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memoryStore) SetUserToken(_ context.Context, id primitive.ObjectID, token *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Token = token
	return nil
}

func (s *memoryStore) SetUserCart(_ context.Context, userID, cartID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.CartID = &cartID
	return nil
}

func (s *memoryStore) ListUsers(_ context.Context) ([]models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.PublicUser{}
	for _, u := range s.users {
		users = append(users, models.PublicUser{
			ID:        u.ID,
			Username:  u.Username,
			CartID:    u.CartID,
			CreatedAt: u.CreatedAt,
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// ---------------- Items ----------------

func (s *memoryStore) CreateItem(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *memoryStore) GetItemByID(_ context.Context, id primitive.ObjectID) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *memoryStore) ListItemsByStatus(_ context.Context, status models.ItemStatus) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.Item{}
	for _, it := range s.items {
		if it.Status == status {
			items = append(items, *it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// ---------------- Carts ----------------

func (s *memoryStore) CreateCart(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.ID = primitive.NewObjectID()
	cp := *cart
	s.carts[cart.ID] = &cp
	return nil
}

func (s *memoryStore) GetCartByID(_ context.Context, id primitive.ObjectID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memoryStore) FindActiveCart(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		if c.UserID == userID && c.Status == models.CartStatusActive {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) SetCartStatus(_ context.Context, id primitive.ObjectID, status models.CartStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	return nil
}

// ---------------- Cart items ----------------

func (s *memoryStore) CreateCartItem(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	cp := *item
	s.cartItems[item.ID] = &cp
	return nil
}

func (s *memoryStore) GetCartItemByID(_ context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ci
	return &cp, nil
}

func (s *memoryStore) FindCartItem(_ context.Context, cartID, itemID primitive.ObjectID) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ci := range s.cartItems {
		if ci.CartID == cartID && ci.ItemID == itemID {
			cp := *ci
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) ListCartItems(_ context.Context, cartID primitive.ObjectID) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.CartItem{}
	for _, ci := range s.cartItems {
		if ci.CartID == cartID {
			items = append(items, *ci)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID.Hex() < items[j].ID.Hex() })
	return items, nil
}

func (s *memoryStore) SetCartItemQuantity(_ context.Context, id primitive.ObjectID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci, ok := s.cartItems[id]
	if !ok {
		return ErrNotFound
	}
	ci.Quantity = quantity
	return nil
}

func (s *memoryStore) DeleteCartItem(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

// ---------------- Orders ----------------

func (s *memoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

func (s *memoryStore) ListOrdersByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// ---------------- Maintenance ----------------

func (s *memoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
