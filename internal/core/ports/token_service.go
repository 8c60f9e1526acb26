package ports

import "github.com/smatech/auth-service/internal/core/domain"

// TokenService issues and checks signed session tokens. Tokens are
// stateless: validity is determined by signature and expiry alone.
type TokenService interface {
	// Issue produces a signed token binding the user's identity with an
	// expiry of issuance time plus the configured validity window.
	Issue(user *domain.User) (string, error)
	// Validate verifies signature integrity and expiry and returns the
	// embedded identity. Any failure (malformed encoding, bad signature,
	// expired) is domain.ErrTokenInvalid.
	Validate(token string) (*domain.Identity, error)
	// ExtractIdentity decodes the subject email without re-verifying
	// signature or expiry. For callers that already trust the token's
	// provenance; it is deliberately not merged with Validate.
	ExtractIdentity(token string) (string, error)
}
