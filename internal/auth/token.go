// Package auth issues and verifies signed bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vms/internal/domain"
)

// Tagged verification failures. Callers branch on these with errors.Is;
// verification never reports failure any other way.
var (
	ErrMalformed    = errors.New("token malformed")
	ErrExpired      = errors.New("token expired")
	ErrBadSignature = errors.New("token signature mismatch")
	ErrUnsupported  = errors.New("token algorithm or version unsupported")
)

// TokenService issues and verifies HS256 bearer tokens. The signing secret
// is loaded once at startup and immutable afterwards — key rotation is out
// of scope. Tokens carry only the subject and time bounds; roles are
// re-resolved from the directory on every request so a long-lived token
// cannot carry stale privileges.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. The secret must be non-empty.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", ttl)
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock overrides the clock. Test hook.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue creates a signed token for the principal. The subject claim is the
// principal's stable id, issued-at is now, expiry is now plus the
// configured TTL.
func (s *TokenService) Issue(p *domain.Principal) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(p.ID, 10),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify opens a token and returns the subject's principal id. On failure
// it returns one of ErrMalformed, ErrExpired, ErrBadSignature, or
// ErrUnsupported. No side effects.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, classifyParseError(err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, ErrMalformed
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return id, nil
}

// classifyParseError maps golang-jwt parse errors onto the tagged failure
// set. The library verifies the signature before validating claims, so an
// expired token reports ErrExpired only when its signature is genuine. A
// rejected signing method surfaces through the keyfunc as ErrTokenUnverifiable.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrUnsupported
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
