package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/internal/auth"
	"github.com/irpanzy/sport-area-stp-backend/internal/model"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles POST /api/auth/register. New accounts always get the
// user role; admins are seeded or promoted by another admin.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     model.RoleUser,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login and issues an access token carrying
// the account's id and role.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
			return
		}
		fail(c, err)
		return
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	token, err := auth.CreateToken(h.cfg.Auth.JWTSecret, user.ID, user.Role, h.cfg.Auth.TokenTTL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "name": user.Name, "role": user.Role},
	})
}
