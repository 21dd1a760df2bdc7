package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/routes"
	"github.com/prabhu5211/Shopping-Cart/store"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, store.NewMemory())
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": "pw1"}
	w := doJSON(r, http.MethodPost, "/api/users", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/users/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func createItem(t *testing.T, r *gin.Engine, name string) models.Item {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/items", "", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Item models.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Item
}

func addToCart(t *testing.T, r *gin.Engine, token string, itemID primitive.ObjectID) (models.Cart, models.CartItem) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/carts", token, map[string]string{"item_id": itemID.Hex()})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Cart     models.Cart     `json:"cart"`
		CartItem models.CartItem `json:"cartItem"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Cart, resp.CartItem
}

func placeOrder(r *gin.Engine, token string, cartID string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/orders", token, map[string]string{"cart_id": cartID})
}

func TestPlaceOrder(t *testing.T) {
	r := newServer(t)
	token := signupAndLogin(t, r, "alice")
	item := createItem(t, r, "Widget")
	cart, cartItem := addToCart(t, r, token, item.ID)

	t.Run("requires auth", func(t *testing.T) {
		w := placeOrder(r, "", cart.ID.Hex())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cart id required", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/orders", token, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown cart", func(t *testing.T) {
		w := placeOrder(r, token, primitive.NewObjectID().Hex())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("forbidden for another user's cart", func(t *testing.T) {
		otherToken := signupAndLogin(t, r, "bob")
		w := placeOrder(r, otherToken, cart.ID.Hex())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		// Empty the cart first, then try to convert it.
		w := doJSON(r, http.MethodDelete, "/api/carts/"+cartItem.ID.Hex(), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = placeOrder(r, token, cart.ID.Hex())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "empty cart")
	})

	t.Run("converts a non-empty cart", func(t *testing.T) {
		addToCart(t, r, token, item.ID)

		w := placeOrder(r, token, cart.ID.Hex())
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Order models.Order `json:"order"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, cart.ID, resp.Order.CartID)

		// The cart is no longer the active one.
		w = doJSON(r, http.MethodGet, "/api/carts", token, nil)
		var cartResp struct {
			Cart *models.Cart `json:"cart"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
		assert.Nil(t, cartResp.Cart)
	})

	t.Run("rejects an already ordered cart", func(t *testing.T) {
		w := placeOrder(r, token, cart.ID.Hex())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already converted")
	})
}

func TestGetOrders(t *testing.T) {
	r := newServer(t)
	token := signupAndLogin(t, r, "alice")

	t.Run("empty history", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/orders", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var orders []models.OrderDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		assert.Empty(t, orders)
	})

	t.Run("orders carry joined items", func(t *testing.T) {
		item := createItem(t, r, "Widget")
		cart, cartItem := addToCart(t, r, token, item.ID)
		w := doJSON(r, http.MethodPut, "/api/carts/"+cartItem.ID.Hex(), token, map[string]int{"quantity": 3})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, http.StatusCreated, placeOrder(r, token, cart.ID.Hex()).Code)

		w = doJSON(r, http.MethodGet, "/api/orders", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []models.OrderDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, "Widget", orders[0].Items[0].Item.Name)
		assert.Equal(t, 3, orders[0].Items[0].Quantity)
	})

	t.Run("does not see other users' orders", func(t *testing.T) {
		otherToken := signupAndLogin(t, r, "bob")
		w := doJSON(r, http.MethodGet, "/api/orders", otherToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var orders []models.OrderDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		assert.Empty(t, orders)
	})
}
