package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Fixed at registration time and
// never mutable through the update path.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Roles returns every known role, in declaration order.
func Roles() []Role {
	return []Role{RoleCustomer, RoleAdmin}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenInvalid = errors.New("invalid token")

// User models a registered account.
//
// PasswordHash is opaque everywhere outside the password package and is never
// serialized. IsActive and IsDeleted are stored lifecycle flags; no business
// rule reads them yet.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the subject a session token asserts: who the holder is and
// which role partition they belong to.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}
