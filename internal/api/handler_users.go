package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/internal/auth"
	"github.com/irpanzy/sport-area-stp-backend/internal/mw"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ListUsers handles GET /api/users (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// GetUser handles GET /api/users/:id; accessible to the account owner or
// an admin.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if mw.CurrentUserID(c) != id && !mw.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied: only the account owner or an admin may view this"})
		return
	}

	user, err := h.store.UserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUser handles PUT /api/users/:id (admin only).
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.UserUpdate{Name: req.Name, Email: req.Email, Role: req.Role}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		upd.Password = &hash
	}

	user, err := h.store.UpdateUser(c.Request.Context(), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": toUserResponse(user)})
}

// DeleteUser handles DELETE /api/users/:id (admin only).
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
