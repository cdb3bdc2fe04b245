package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://push.example.com/send/abc123"

func TestPutSubscriptionValidation(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newUser(t, "User", "u@example.com", "user")

	// Empty body.
	w := ts.do(t, http.MethodPut, "/api/subscriptions", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing keys.
	w = ts.do(t, http.MethodPut, "/api/subscriptions", token, gin.H{"endpoint": testEndpoint})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No token at all.
	w = ts.do(t, http.MethodPut, "/api/subscriptions", "", gin.H{
		"endpoint": testEndpoint, "p256dh": "k", "auth": "a",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscriptionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newUser(t, "User", "u@example.com", "user")
	_, otherToken := ts.newUser(t, "Other", "o@example.com", "user")

	w := ts.do(t, http.MethodPut, "/api/subscriptions", token, gin.H{
		"endpoint": testEndpoint, "p256dh": "key1", "auth": "auth1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Re-subscribing the same endpoint is idempotent.
	w = ts.do(t, http.MethodPut, "/api/subscriptions", token, gin.H{
		"endpoint": testEndpoint, "p256dh": "key2", "auth": "auth2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The owner can look it up by endpoint; push endpoints carry slashes
	// and colons, which pass through the query string verbatim.
	w = ts.do(t, http.MethodGet, "/api/subscriptions?endpoint="+testEndpoint, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, testEndpoint, decode(t, w)["endpoint"])

	// Someone else's lookup does not reveal it exists.
	w = ts.do(t, http.MethodGet, "/api/subscriptions?endpoint="+testEndpoint, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/subscriptions", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting someone else's subscription is forbidden.
	w = ts.do(t, http.MethodDelete, "/api/subscriptions", otherToken, gin.H{"endpoint": testEndpoint})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/subscriptions", token, gin.H{"endpoint": testEndpoint})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting a gone subscription stays a no-op.
	w = ts.do(t, http.MethodDelete, "/api/subscriptions", token, gin.H{"endpoint": testEndpoint})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/subscriptions?endpoint="+testEndpoint, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVAPIDPublicKey(t *testing.T) {
	ts := newTestServer(t)

	// No keys configured in the test server.
	w := ts.do(t, http.MethodGet, "/api/vapid_public_key", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
