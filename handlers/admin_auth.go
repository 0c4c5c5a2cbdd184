package handlers

import (
	"errors"
	"net/http"

	"terravista/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthHandler serves back-office login.
type AdminAuthHandler struct {
	Service admin.AuthService
	Logger  *zap.Logger
}

// NewAdminAuthHandler creates a new AdminAuthHandler.
func NewAdminAuthHandler(svc admin.AuthService, logger *zap.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{Service: svc, Logger: logger}
}

// Login exchanges an email/password pair for a bearer token.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, token, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": user})
}
