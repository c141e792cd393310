// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhileshms120/irblibrary/internal/api"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/transport/http/dto"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Login authenticates an identity, returning a signed token and the
	// recorded session.
	Login(ctx context.Context, email, password string) (string, *entity.Session, error)
	// Logout revokes the session.
	Logout(ctx context.Context, sessionID string) error
	// ProvisionUser registers a new identity with the given role.
	ProvisionUser(ctx context.Context, email, password string, role entity.Role) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication and in-app user
// provisioning.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /login.
// - Binds the request JSON and returns 400 on validation failure
// - Returns 401 on authentication failure without revealing which part failed
// - Returns 200 with the token and session handle on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Token:     token,
		SessionID: session.ID,
		Role:      string(session.Role),
	})
}

// Logout handles POST /logout, revoking the presented session. Revoking a
// session that is already gone still reports success.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.SessionID); err != nil {
		slog.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "signed out"})
}

// CreateUser handles POST /users, the in-app provisioning action. The
// route is admin-gated by the access policy middleware; the handler only
// deals with request mechanics.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	role := entity.Role(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}

	user, err := h.auth.ProvisionUser(c.Request.Context(), req.Email, req.Password, role)
	switch {
	case errors.Is(err, usecase.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		slog.Error("create user failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("user provisioned", "email", user.Email, "role", role)
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "user created and role assigned"})
}
