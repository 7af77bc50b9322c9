package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Claims are the fields carried inside an issued token. They are created once
// at issuance and read-only afterwards; a role change requires a new token.
type Claims struct {
	Subject   string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
	Issuer    string
	Audience  string
}

// tokenClaims is the wire shape: RegisteredClaims plus the role claim.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and validates self-contained HS256 tokens. It performs no I/O;
// given the secret and the current time, the outcome is fully determined by
// the token content. Safe for concurrent use once constructed.
type Codec struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
	now      func() time.Time
}

// NewCodec builds a Codec from the process-wide signing secret and token
// parameters. A non-positive TTL falls back to 24h.
func NewCodec(secret string, ttl time.Duration, issuer, audience string) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{
		secret:   []byte(secret),
		ttl:      ttl,
		issuer:   issuer,
		audience: audience,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the codec clock for deterministic tests.
func (c *Codec) WithClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// Issue signs a token for user with subject, role, iat, exp, iss and aud set.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := c.now()
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token and returns its claims. Failures map
// to exactly one of ErrTokenExpired, ErrTokenSignatureInvalid or
// ErrTokenMalformed; callers must not expose which one to clients.
func (c *Codec) Validate(raw string) (*Claims, error) {
	var tc tokenClaims
	tkn, err := jwt.ParseWithClaims(raw, &tc, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	},
		jwt.WithTimeFunc(c.now),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			// Covers parse failures and issuer/audience mismatches alike.
			return nil, ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrTokenMalformed
	}

	role, err := domain.ParseRole(tc.Role)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	if tc.Subject == "" {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{
		Subject:   tc.Subject,
		Role:      role,
		ExpiresAt: tc.ExpiresAt.Time,
		Issuer:    tc.Issuer,
		Audience:  c.audience,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	return claims, nil
}
