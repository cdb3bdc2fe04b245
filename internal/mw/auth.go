package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/internal/auth"
	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

const (
	ctxUserIDKey = "user_id"
	ctxRoleKey   = "role"
)

// Auth verifies the bearer token and records the caller's identity and role
// on the request context. The asserted role is trusted verbatim downstream.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// AdminOnly rejects callers whose asserted role is not admin. Must run
// after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user id.
func CurrentUserID(c *gin.Context) int64 {
	v, _ := c.Get(ctxUserIDKey)
	id, _ := v.(int64)
	return id
}

// CurrentRole returns the authenticated caller's asserted role.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ctxRoleKey)
	role, _ := v.(string)
	return role
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == model.RoleAdmin
}
