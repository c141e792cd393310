// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// LoginReq represents the request body for the /login endpoint.
// It uses Gin's binding tags for validation.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LogoutReq represents the request body for the /logout endpoint.
type LogoutReq struct {
	SessionID string `json:"session_id" binding:"required"`
}

// LoginResp carries the signed access token plus the session handle the
// client presents on logout.
type LoginResp struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
}
