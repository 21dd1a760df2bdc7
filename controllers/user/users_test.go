package userControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func credentials(username, password string) map[string]string {
	return map[string]string{"username": username, "password": password}
}

func TestSignup(t *testing.T) {
	r := newServer(t)

	t.Run("success", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users", "", credentials("alice", "pw1"))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "userId")
	})

	t.Run("duplicate username", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users", "", credentials("alice", "other"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username already exists")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users", "", credentials("", "pw1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(r, http.MethodPost, "/api/users", "", credentials("bob", ""))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	r := newServer(t)
	w := doJSON(r, http.MethodPost, "/api/users", "", credentials("alice", "pw1"))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("nobody", "pw1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username/password")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "nope"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username/password")
	})

	t.Run("success returns token", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "pw1"))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token    string `json:"token"`
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("second login rejected while session held", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "pw1"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "already logged in")
	})

	t.Run("session lock applies before password check", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "wrong"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLogout(t *testing.T) {
	r := newServer(t)
	doJSON(r, http.MethodPost, "/api/users", "", credentials("alice", "pw1"))

	w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "pw1"))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	t.Run("requires auth", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/logout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("clears the session", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/logout", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// The cleared token no longer authenticates.
		w = doJSON(r, http.MethodGet, "/api/carts", resp.Token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login works again after logout", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "pw1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetAllUsersExcludesCredentials(t *testing.T) {
	r := newServer(t)
	doJSON(r, http.MethodPost, "/api/users", "", credentials("alice", "pw1"))
	doJSON(r, http.MethodPost, "/api/users/login", "", credentials("alice", "pw1"))

	w := doJSON(r, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["username"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, users[0], "token")
}
