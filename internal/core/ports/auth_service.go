package ports

import (
	"context"

	"github.com/smatech/auth-service/internal/core/domain"
)

// RegisterInput is the transient registration payload. The role is never
// part of it: callers choose the role by which entry point they invoke.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

// UpdateUserInput is a partial profile update. A nil field leaves the stored
// value unchanged; a non-nil field overwrites it, empty string included.
// Email, password, and role are not mutable through this path.
type UpdateUserInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
}

// AuthResult is the engine's structured outcome for register and
// authenticate. The token is present only on success; User never carries
// the password hash into serialized form.
type AuthResult struct {
	Success bool
	Token   string
	User    *domain.User
}

// AuthService orchestrates registration, login, and role-scoped user
// operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput, role domain.Role) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetUser(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	GetUsers(ctx context.Context, role domain.Role) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
}
