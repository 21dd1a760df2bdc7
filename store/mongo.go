package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prabhu5211/Shopping-Cart/models"
)

const (
	colUsers     = "users"
	colItems     = "items"
	colCarts     = "carts"
	colCartItems = "cart_items"
	colOrders    = "orders"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongo connects to MongoDB and returns a Store backed by the named
// database. The username uniqueness index is created up front.
func NewMongo(ctx context.Context, uri, dbName string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	s := &mongoStore{db: client.Database(dbName)}

	_, err = s.db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create username index")
	}
	return s, nil
}

// ---------------- Users ----------------

func (s *mongoStore) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.Collection(colUsers).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "insert user")
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err, "find user by username")
	}
	return &user, nil
}

func (s *mongoStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err, "find user")
	}
	return &user, nil
}

func (s *mongoStore) SetUserToken(ctx context.Context, id primitive.ObjectID, token *string) error {
	return s.updateOne(ctx, colUsers, id, bson.M{"$set": bson.M{"token": token}}, "set user token")
}

func (s *mongoStore) SetUserCart(ctx context.Context, userID, cartID primitive.ObjectID) error {
	return s.updateOne(ctx, colUsers, userID, bson.M{"$set": bson.M{"cart_id": cartID}}, "set user cart")
}

func (s *mongoStore) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	cur, err := s.db.Collection(colUsers).Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0, "token": 0}))
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	users := []models.PublicUser{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

// ---------------- Items ----------------

func (s *mongoStore) CreateItem(ctx context.Context, item *models.Item) error {
	res, err := s.db.Collection(colItems).InsertOne(ctx, item)
	if err != nil {
		return errors.Wrap(err, "insert item")
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoStore) GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := s.db.Collection(colItems).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, mapFindErr(err, "find item")
	}
	return &item, nil
}

func (s *mongoStore) ListItemsByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error) {
	cur, err := s.db.Collection(colItems).Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, errors.Wrap(err, "list items")
	}
	items := []models.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode items")
	}
	return items, nil
}

// ---------------- Carts ----------------

func (s *mongoStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	res, err := s.db.Collection(colCarts).InsertOne(ctx, cart)
	if err != nil {
		return errors.Wrap(err, "insert cart")
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoStore) GetCartByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Collection(colCarts).FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		return nil, mapFindErr(err, "find cart")
	}
	return &cart, nil
}

func (s *mongoStore) FindActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Collection(colCarts).
		FindOne(ctx, bson.M{"user_id": userID, "status": models.CartStatusActive}).
		Decode(&cart)
	if err != nil {
		return nil, mapFindErr(err, "find active cart")
	}
	return &cart, nil
}

func (s *mongoStore) SetCartStatus(ctx context.Context, id primitive.ObjectID, status models.CartStatus) error {
	return s.updateOne(ctx, colCarts, id, bson.M{"$set": bson.M{"status": status}}, "set cart status")
}

// ---------------- Cart items ----------------

func (s *mongoStore) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	res, err := s.db.Collection(colCartItems).InsertOne(ctx, item)
	if err != nil {
		return errors.Wrap(err, "insert cart item")
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoStore) GetCartItemByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Collection(colCartItems).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, mapFindErr(err, "find cart item")
	}
	return &item, nil
}

func (s *mongoStore) FindCartItem(ctx context.Context, cartID, itemID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Collection(colCartItems).
		FindOne(ctx, bson.M{"cart_id": cartID, "item_id": itemID}).
		Decode(&item)
	if err != nil {
		return nil, mapFindErr(err, "find cart line")
	}
	return &item, nil
}

func (s *mongoStore) ListCartItems(ctx context.Context, cartID primitive.ObjectID) ([]models.CartItem, error) {
	cur, err := s.db.Collection(colCartItems).Find(ctx, bson.M{"cart_id": cartID})
	if err != nil {
		return nil, errors.Wrap(err, "list cart items")
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode cart items")
	}
	return items, nil
}

func (s *mongoStore) SetCartItemQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error {
	return s.updateOne(ctx, colCartItems, id, bson.M{"$set": bson.M{"quantity": quantity}}, "set quantity")
}

func (s *mongoStore) DeleteCartItem(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.Collection(colCartItems).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete cart item")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- Orders ----------------

func (s *mongoStore) CreateOrder(ctx context.Context, order *models.Order) error {
	res, err := s.db.Collection(colOrders).InsertOne(ctx, order)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoStore) ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cur, err := s.db.Collection(colOrders).Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}

// ---------------- Maintenance ----------------

func (s *mongoStore) Reset(ctx context.Context) error {
	for _, col := range []string{colUsers, colItems, colCarts, colCartItems, colOrders} {
		if _, err := s.db.Collection(col).DeleteMany(ctx, bson.M{}); err != nil {
			return errors.Wrapf(err, "clear %s", col)
		}
	}
	return nil
}

// ---------------- Helpers ----------------

func (s *mongoStore) updateOne(ctx context.Context, col string, id primitive.ObjectID, update bson.M, op string) error {
	res, err := s.db.Collection(col).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func mapFindErr(err error, op string) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return errors.Wrap(err, op)
}
