// Package token issues and verifies the signed, expiring bearer tokens that
// carry a caller's identity.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

const defaultTTL = time.Hour

var (
	// ErrInvalidToken is the single class every verification failure belongs to.
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrExpiredToken   = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrMissingSecret is returned by Issue when no signing secret is configured.
	ErrMissingSecret = errors.New("token signing secret is not configured")
)

// Claims is the JWT payload. It stays small: who and which role.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a symmetric secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a Codec.
type Option func(*Codec)

// WithClock replaces the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec returns a Codec. A non-positive ttl falls back to one hour.
func NewCodec(secret string, ttl time.Duration, opts ...Option) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	c := &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL is the validity window applied to every issued token.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a token for id and returns it with its expiry.
func (c *Codec) Issue(id domain.Identity) (string, time.Time, error) {
	if len(c.secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}

	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := Claims{
		ID:   id.ID,
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// A token is rejected once the current time reaches its expiry.
func (c *Codec) Verify(raw string) (domain.Identity, error) {
	if len(c.secret) == 0 || raw == "" {
		return domain.Identity{}, ErrMalformedToken
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	},
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrExpiredToken
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if !tkn.Valid || claims.ID == "" || claims.Role == "" {
		return domain.Identity{}, ErrMalformedToken
	}

	return domain.Identity{ID: claims.ID, Role: domain.Role(claims.Role)}, nil
}
