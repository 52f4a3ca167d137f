package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/middleware"
	"jobtrackr/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Register is POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}
	resp, err := h.Auth.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}
	resp, err := h.Auth.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me is GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Auth.GetUser(middleware.UserID(c))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
