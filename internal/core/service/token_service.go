package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smatech/auth-service/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the JWT payload for a session token. Subject carries the
// user's email, the token's subject identity.
type sessionClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens. The signing
// key is set once at construction and read concurrently without locking.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// validity window. A non-positive ttl falls back to defaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user, expiring after the validity window.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks signature and expiry and returns the embedded identity.
// Malformed encoding, signature mismatch, and elapsed expiry all map to
// domain.ErrTokenInvalid.
func (s *TokenService) Validate(token string) (*domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Identity{
		UserID: claims.UserID,
		Email:  claims.Subject,
		Role:   domain.Role(claims.Role),
	}, nil
}

// ExtractIdentity decodes the subject email without verifying signature or
// expiry. Callers use it only on tokens whose provenance they already trust.
func (s *TokenService) ExtractIdentity(token string) (string, error) {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", domain.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
