package handler

import "github.com/prsunet/realestate-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role is optional and defaults to "buyer"; the service rejects values
	// outside the role enum.
	Role string `json:"role"`
}

type registerResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse returns the issued token together with the user record.
// The password hash is excluded via the User type's json:"-" tag.
type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
