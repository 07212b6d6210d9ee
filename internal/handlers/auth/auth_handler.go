package auth

import (
	"net/http"

	"nexcraft-service/internal/domain/admin"
	"nexcraft-service/internal/middleware"
	xerrors "nexcraft-service/internal/pkg/errors"
	"nexcraft-service/internal/pkg/response"
	authService "nexcraft-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authService.Service
	logger      *zap.Logger
}

func NewAuthHandler(svc *authService.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: svc, logger: logger}
}

// Signup creates a new admin account (public endpoint).
func (h *AuthHandler) Signup(c *gin.Context) {
	var req admin.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			response.Error(c, http.StatusBadRequest, "Admin with this email already exists")
			return
		}
		h.logger.Error("signup failed", zap.Error(err))
		response.Internal(c, "Failed to create admin account")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login authenticates an admin with email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.Internal(c, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated admin's identity.
func (h *AuthHandler) Me(c *gin.Context) {
	a := middleware.MustCurrentAdmin(c)
	c.JSON(http.StatusOK, a.Info())
}
