package dto

// CreateUserReq represents the request body for the admin-only /users
// endpoint. Role defaults to "user" when omitted.
type CreateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}
