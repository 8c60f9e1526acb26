package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smatech/auth-service/internal/api/metrics"
	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

// AuthService orchestrates registration, login, and role-scoped user
// operations. It owns no state of its own; every call is one unit of work
// against the store, the hasher, and the token service.
type AuthService struct {
	store  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenService
	cache  ports.UserListingCache // optional, nil disables caching
	audit  ports.AuditRecorder    // optional, nil disables the audit trail
	log    zerolog.Logger
}

func NewAuthService(
	store ports.UserStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	cache ports.UserListingCache,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		cache:  cache,
		audit:  audit,
		log:    log,
	}
}

// Register creates a new user with the caller-chosen role. The role comes
// from which entry point was invoked, never from client payload. A taken
// email fails with domain.ErrEmailTaken whether it is caught by the lookup
// or by the store's unique index at insert time.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
	if in.Email == "" || in.Password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.store.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	hashStart := time.Now()
	hash, err := s.hasher.Hash(in.Password)
	metrics.PasswordHashDuration.Observe(time.Since(hashStart).Seconds())
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Role:         role,
		IsActive:     true,
		IsDeleted:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.store.Save(ctx, user)
	if err != nil {
		// The unique index is the real uniqueness guarantee; a concurrent
		// registration losing the race lands here.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("register: save user: %w", err)
	}

	s.invalidateListing(ctx, role)

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.record(domain.AuthEvent{Kind: domain.EventRegistered, Email: created.Email, Role: created.Role, Timestamp: now})
	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")

	return &ports.AuthResult{Success: true, Token: token, User: created}, nil
}

// Authenticate verifies credentials and issues a session token. An unknown
// email and a wrong password both fail with domain.ErrInvalidCredentials so
// that callers cannot distinguish which part of the credential was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEvent{Kind: domain.EventLoginFailed, Email: email, Timestamp: time.Now().UTC()})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(domain.AuthEvent{Kind: domain.EventLoginFailed, Email: email, Role: user.Role, Timestamp: time.Now().UTC()})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("authenticate: issue token: %w", err)
	}

	s.record(domain.AuthEvent{Kind: domain.EventLoginSucceeded, Email: user.Email, Role: user.Role, Timestamp: time.Now().UTC()})

	return &ports.AuthResult{Success: true, Token: token, User: user}, nil
}

// GetUser looks up a user by email.
func (s *AuthService) GetUser(ctx context.Context, email string) (*domain.User, error) {
	return s.store.FindByEmail(ctx, email)
}

// GetUserByID is a point lookup with role as a hard filter: a record outside
// the given role is indistinguishable from a nonexistent one.
func (s *AuthService) GetUserByID(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return s.store.FindByIDAndRole(ctx, id, role)
}

// GetUserByToken resolves the user behind an already-trusted token. It
// decodes the subject without re-validating signature or expiry; callers are
// expected to have validated the token at the transport boundary.
func (s *AuthService) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.ExtractIdentity(token)
	if err != nil {
		return nil, err
	}
	return s.store.FindByEmail(ctx, email)
}

// GetUsers lists a role partition. An empty partition is ErrUserNotFound.
func (s *AuthService) GetUsers(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if s.cache != nil {
		users, ok, err := s.cache.Get(ctx, role)
		if err != nil {
			s.log.Warn().Err(err).Str("role", string(role)).Msg("listing cache read failed, falling back to store")
		} else if ok {
			return users, nil
		}
	}

	users, err := s.store.FindAllByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, role, users); err != nil {
			s.log.Warn().Err(err).Str("role", string(role)).Msg("listing cache write failed")
		}
	}
	return users, nil
}

// UpdateUser applies a partial profile update to a CUSTOMER record. Only
// fields present in the input change; role, email, and the password hash are
// untouchable through this path.
func (s *AuthService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.store.FindByIDAndRole(ctx, id, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.store.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: save: %w", err)
	}

	s.invalidateListing(ctx, domain.RoleCustomer)
	s.record(domain.AuthEvent{Kind: domain.EventUserUpdated, Email: updated.Email, Role: updated.Role, Timestamp: user.UpdatedAt})

	return updated, nil
}

func (s *AuthService) invalidateListing(ctx context.Context, role domain.Role) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, role); err != nil {
		s.log.Warn().Err(err).Str("role", string(role)).Msg("listing cache invalidation failed")
	}
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
