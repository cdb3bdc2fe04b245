package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userPath(id int64) string {
	return "/api/users/" + strconv.FormatInt(id, 10)
}

func TestGetUserAccess(t *testing.T) {
	ts := newTestServer(t)
	u, uToken := ts.newUser(t, "User", "u@example.com", "user")
	other, _ := ts.newUser(t, "Other", "o@example.com", "user")
	_, adminToken := ts.newUser(t, "Admin", "admin@example.com", "admin")

	// Self and admin may read an account; other users may not.
	w := ts.do(t, http.MethodGet, userPath(u.ID), uToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "u@example.com", got["email"])

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, userPath(other.ID), adminToken, nil).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodGet, userPath(other.ID), uToken, nil).Code)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, userPath(9999), adminToken, nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/users/abc", adminToken, nil).Code)
}

func TestListUsersAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	_, uToken := ts.newUser(t, "User", "u@example.com", "user")
	_, adminToken := ts.newUser(t, "Admin", "admin@example.com", "admin")

	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodGet, "/api/users", uToken, nil).Code)

	w := ts.do(t, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]any)
	assert.Len(t, users, 2)

	// The password hash never leaves the server.
	for _, raw := range users {
		_, found := raw.(map[string]any)["password"]
		assert.False(t, found)
	}
}

func TestUpdateUser(t *testing.T) {
	ts := newTestServer(t)
	u, uToken := ts.newUser(t, "User", "u@example.com", "user")
	_, adminToken := ts.newUser(t, "Admin", "admin@example.com", "admin")

	assert.Equal(t, http.StatusForbidden,
		ts.do(t, http.MethodPut, userPath(u.ID), uToken, gin.H{"role": "admin"}).Code)

	w := ts.do(t, http.MethodPut, userPath(u.ID), adminToken, gin.H{
		"name": "Renamed", "role": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Renamed", got["name"])
	assert.Equal(t, "admin", got["role"])

	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPut, userPath(u.ID), adminToken, gin.H{"role": "superuser"}).Code)
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPut, userPath(u.ID), adminToken, gin.H{"email": "admin@example.com"}).Code)

	// A password update re-hashes; the new password logs in.
	w = ts.do(t, http.MethodPut, userPath(u.ID), adminToken, gin.H{"password": "newsecret"})
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "u@example.com", "password": "newsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUser(t *testing.T) {
	ts := newTestServer(t)
	u, uToken := ts.newUser(t, "User", "u@example.com", "user")
	_, adminToken := ts.newUser(t, "Admin", "admin@example.com", "admin")

	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodDelete, userPath(u.ID), uToken, nil).Code)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, userPath(u.ID), adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, userPath(u.ID), adminToken, nil).Code)
}
