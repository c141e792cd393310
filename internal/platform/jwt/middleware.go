package jwtmw

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/akhileshms120/irblibrary/internal/api"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
)

// Context keys set by the middleware chain.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// RoleResolver maps an authenticated identity to its current role.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (usecase).
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) entity.Role
}

// AuthRequired returns a Gin middleware that validates JWT tokens and
// restricts access to authenticated identities only.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Set(ContextUserID, sub)
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
		}
		c.Next()
	}
}

// ResolveProfile returns a middleware that resolves the caller's role from
// its profile and stores it in the request context. An identity without a
// profile proceeds with RoleNone; absence of a profile is a valid,
// degraded state, never a rejection.
func ResolveProfile(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.RoleNone
		if userID := c.GetString(ContextUserID); userID != "" {
			role = resolver.ResolveRole(c.Request.Context(), userID)
		}
		c.Set(ContextRole, string(role))
		c.Next()
	}
}

// RequirePermission returns a middleware that consults the access policy
// for the given operation against the caller's resolved role.
func RequirePermission(op domain.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(ContextRole))
		if !domain.Allowed(role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "operation not permitted"})
			return
		}
		c.Next()
	}
}
