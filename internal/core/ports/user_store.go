package ports

import (
	"context"

	"github.com/smatech/auth-service/internal/core/domain"
)

// UserStore is the persistence contract the authentication core depends on.
//
// Implementations must enforce email uniqueness at the storage level (unique
// index); the engine's existence check before Save is an early exit, not the
// guarantee. A Save that violates uniqueness returns domain.ErrEmailTaken.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDAndRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	FindAllByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// Save inserts when user.ID is empty, otherwise replaces the stored
	// record in place. Returns the persisted user with its assigned ID.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
