// Package router builds the HTTP route table and its middleware chain.
package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/akhileshms120/irblibrary/internal/feature/auth/domain"
	authhandler "github.com/akhileshms120/irblibrary/internal/feature/auth/transport/handler"
	borrowinghandler "github.com/akhileshms120/irblibrary/internal/feature/borrowing/transport/handler"
	cataloghandler "github.com/akhileshms120/irblibrary/internal/feature/catalog/transport/handler"
	phandler "github.com/akhileshms120/irblibrary/internal/platform/http/handler"
	jwtmw "github.com/akhileshms120/irblibrary/internal/platform/jwt"
)

// requestTimeout bounds every request's round trip to the stores so a
// stalled backend surfaces as a timeout instead of hanging the caller.
const requestTimeout = 10 * time.Second

// NewRouter wires all handlers into a gin engine. Authenticated routes run
// through JWT validation, profile resolution and the per-operation access
// policy, in that order.
func NewRouter(authH *authhandler.AuthHandler, borrowingH *borrowinghandler.BorrowingHandler,
	catalogH *cataloghandler.CatalogHandler, roles jwtmw.RoleResolver) *gin.Engine {
	r := gin.Default()
	r.Use(withTimeout(requestTimeout))

	// No authentication required
	r.GET("/healthz", phandler.Health)
	r.POST("/login", authH.Login)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(), jwtmw.ResolveProfile(roles))
	{
		auth.POST("/logout", authH.Logout)

		auth.GET("/borrowings",
			jwtmw.RequirePermission(authdomain.OpBorrowingList), borrowingH.List)
		auth.POST("/borrowings",
			jwtmw.RequirePermission(authdomain.OpBorrowingCreate), borrowingH.Create)
		auth.PUT("/borrowings/:id",
			jwtmw.RequirePermission(authdomain.OpBorrowingUpdate), borrowingH.Update)
		auth.DELETE("/borrowings/:id",
			jwtmw.RequirePermission(authdomain.OpBorrowingDelete), borrowingH.Delete)
		auth.GET("/borrowings/search",
			jwtmw.RequirePermission(authdomain.OpBorrowingSearch), borrowingH.Search)

		auth.GET("/books/suggestions",
			jwtmw.RequirePermission(authdomain.OpCatalogSuggest), catalogH.Suggestions)

		// Admin only: in-app user provisioning
		auth.POST("/users",
			jwtmw.RequirePermission(authdomain.OpProvisionUser), authH.CreateUser)
	}

	return r
}

// withTimeout attaches a deadline to each request context so downstream
// store calls are bounded.
func withTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
