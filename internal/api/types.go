// Package api defines the shared request/response envelope types used by
// all HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry
// no payload beyond a status message.
type MessageResponse struct {
	Message string `json:"message"`
}
