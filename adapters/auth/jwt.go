// Package auth provides stateless admin authentication using signed JWTs.
// The credential itself carries everything needed for validation - no
// server-side session state, safe across restarts and multiple instances.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmedw/folio/domain/session"
	"github.com/ahmedw/folio/ports"
)

var (
	// ErrExpired means the credential was well-formed and correctly signed
	// but its expiry has passed.
	ErrExpired = errors.New("session expired")

	// ErrMalformed covers everything else: bad encoding, wrong signature,
	// wrong signing method, missing claims.
	ErrMalformed = errors.New("malformed session credential")
)

// Claims are the JWT claims carried by an admin session credential.
type Claims struct {
	Username string `json:"username"`
	Remember bool   `json:"remember,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin session credentials.
// Thread-safe and suitable for concurrent use.
type TokenService struct {
	secret []byte
	issuer string
	clock  ports.Clock
}

// NewTokenService creates a token service signing with the given secret.
// The clock is injected so expiry can be exercised in tests.
func NewTokenService(secret string, clock ports.Clock) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("session signing secret is required")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: "folio",
		clock:  clock,
	}, nil
}

// Issue mints a signed credential for the admin user. Lifetime is 24 hours,
// or 30 days when remember is set.
func (s *TokenService) Issue(username string, remember bool) (string, time.Time, error) {
	now := s.clock.Now().UTC()
	expiresAt := now.Add(session.TTL(remember))

	claims := Claims{
		Username: username,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate verifies signature and expiry and returns the claims.
// Returns ErrExpired for a correctly signed but stale credential and
// ErrMalformed for anything that cannot be verified.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.clock.Now().UTC() }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrMalformed
	}

	return claims, nil
}
