// Package bootstrap holds one-time startup side effects that are not part of
// per-request logic.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

// EnsureDefaultAdmin creates the default admin account if no user exists
// under the configured email. Idempotent: a second process losing the race
// to the store's unique index treats the conflict as already-seeded.
func EnsureDefaultAdmin(ctx context.Context, store ports.UserStore, hasher ports.PasswordHasher, email, password string, log zerolog.Logger) error {
	_, err := store.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap: lookup default admin: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Admin",
		PhoneNumber:  "1234567890",
		Address:      "Hardcoded Address",
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := store.Save(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("bootstrap: create default admin: %w", err)
	}

	log.Info().Str("email", email).Msg("default admin user created")
	return nil
}
