package handler

import "github.com/smatech/auth-service/internal/core/domain"

type registerRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type authenticateRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a partial profile payload: absent fields stay nil and
// leave the stored value untouched; present fields overwrite, empty string
// included. Email, password, and role are not part of it.
type updateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// authResponse is the four-field response envelope used by every endpoint:
// success flag, optional token, optional description, optional data payload.
type authResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	Description string `json:"description,omitempty"`
	Data        any    `json:"data,omitempty"`
}

type rolesResponse struct {
	Success bool          `json:"success"`
	Data    []domain.Role `json:"data"`
}
