package middleware

import (
	"context"
	"strings"

	"nexcraft-service/internal/domain/admin"
	"nexcraft-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "current_admin"

// Authenticator resolves a bearer token to a live admin identity.
type Authenticator interface {
	ValidateToken(ctx context.Context, token string) (*admin.Admin, error)
}

// AuthMiddleware is the single policy enforcement point for protected
// routes. All authenticated admins have identical, full privileges;
// there is no secondary authorization layer.
type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Auth validates the request's bearer token and stores the resolved
// admin in the context. Every failure path returns the same uniform
// 401 so callers cannot tell which part of the check failed.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" {
			response.Unauthorized(c)
			return
		}

		a, err := m.auth.ValidateToken(c.Request.Context(), tok)
		if err != nil {
			response.Unauthorized(c)
			return
		}

		c.Set(adminContextKey, a)
		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the token query param for WebSocket upgrades.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	return c.Query("token")
}

// CurrentAdmin returns the admin resolved by Auth, if any.
func CurrentAdmin(c *gin.Context) (*admin.Admin, bool) {
	v, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}

	a, ok := v.(*admin.Admin)
	return a, ok
}

// MustCurrentAdmin gets the current admin or panics; for handlers that
// are only ever mounted behind Auth.
func MustCurrentAdmin(c *gin.Context) *admin.Admin {
	a, ok := CurrentAdmin(c)
	if !ok {
		panic("current_admin not found in context")
	}
	return a
}
