package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
)

const testSecret = "test-secret"

// staticRoleResolver is a mock implementation of RoleResolver.
type staticRoleResolver struct {
	role entity.Role
}

func (r staticRoleResolver) ResolveRole(ctx context.Context, userID string) entity.Role {
	return r.role
}

func signToken(t *testing.T) string {
	t.Helper()
	token, err := NewGenerator(testSecret, time.Hour).GenerateToken("user-1", "lib@library.com", entity.RoleLibrarian)
	require.NoError(t, err)
	return token
}

func authChain(t *testing.T, role entity.Role, op domain.Operation) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		AuthRequired(),
		ResolveProfile(staticRoleResolver{role: role}),
		RequirePermission(op),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"userID": c.GetString(ContextUserID),
				"email":  c.GetString(ContextEmail),
				"role":   c.GetString(ContextRole),
			})
		})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSecret)

	t.Run("valid token passes identity through", func(t *testing.T) {
		r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
		assert.Contains(t, w.Body.String(), "lib@library.com")
		assert.Contains(t, w.Body.String(), "librarian")
	})

	t.Run("missing header", func(t *testing.T) {
		r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t)+"x")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := NewGenerator(testSecret, -time.Hour).GenerateToken("user-1", "lib@library.com", entity.RoleLibrarian)
		require.NoError(t, err)

		r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-HMAC algorithm is rejected", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
		unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+unsigned)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthRequired_MissingSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	r := authChain(t, entity.RoleLibrarian, domain.OpBorrowingList)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequirePermission(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSecret)

	t.Run("forbidden operation", func(t *testing.T) {
		r := authChain(t, entity.RoleUser, domain.OpProvisionUser)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("profileless identity keeps borrowing access", func(t *testing.T) {
		r := authChain(t, entity.RoleNone, domain.OpBorrowingList)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
