package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "New User", "email": "new@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Email is already taken now.
	w = ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Imposter", "email": "new@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "new@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "New User", user["name"])
	assert.Equal(t, "user", user["role"])
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name string
		body gin.H
	}{
		{name: "Missing name", body: gin.H{"email": "a@example.com", "password": "secret123"}},
		{name: "Bad email", body: gin.H{"name": "A", "email": "not-an-email", "password": "secret123"}},
		{name: "Short password", body: gin.H{"name": "A", "email": "a@example.com", "password": "short"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	ts := newTestServer(t)

	// A role field in the payload is ignored; accounts always start as user.
	w := ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Sneaky", "email": "sneaky@example.com", "password": "secret123",
		"role": "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	u, err := ts.store.UserByEmail(context.Background(), "sneaky@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user", u.Role)
}

func TestLoginFailures(t *testing.T) {
	ts := newTestServer(t)
	ts.newUser(t, "User", "u@example.com", "user")

	w := ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "missing@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "u@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/bookings/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/api/bookings/my", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
