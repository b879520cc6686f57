// Package identity verifies and issues signed ID tokens.
//
// The identity provider owns interactive login; this package only consumes
// the resulting HS256 JWT. The email claim is the ledger key.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

// Claims is the ID token payload.
type Claims struct {
	jwt.RegisteredClaims
	Name          string `json:"name,omitempty"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"` // RFC 3339
}

// Profile converts claims into a profile record.
func (c *Claims) Profile() model.Profile {
	p := model.Profile{
		Subject:       c.Subject,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		Name:          c.Name,
		Nickname:      c.Nickname,
		Picture:       c.Picture,
	}
	if t, err := time.Parse(time.RFC3339, c.UpdatedAt); err == nil {
		p.UpdatedAt = t.UTC()
	}
	return p
}

// Verifier checks HS256 tokens.
type Verifier struct {
	key    []byte
	leeway time.Duration
}

// NewVerifier constructs a verifier for the shared signing key.
func NewVerifier(key []byte) *Verifier { return &Verifier{key: key, leeway: 30 * time.Second} }

// Verify parses tok and returns its claims. Any failure is errs.ErrUnauthorized.
func (v *Verifier) Verify(tok string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.key, nil
	}, jwt.WithLeeway(v.leeway), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
	}
	claims.Email = strings.TrimSpace(claims.Email)
	if claims.Email == "" || !strings.Contains(claims.Email, "@") {
		return nil, fmt.Errorf("token has no email: %w", errs.ErrUnauthorized)
	}
	return &claims, nil
}

// Issue signs a token for p valid for ttl. Used by the dev login flow and tests.
func Issue(key []byte, p model.Profile, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Name:          p.Name,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		Picture:       p.Picture,
		Nickname:      p.Nickname,
	}
	if !p.UpdatedAt.IsZero() {
		claims.UpdatedAt = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	return signed, exp, err
}

// Inspect decodes claims without verifying the signature. The client uses it
// to show who is logged in; never use it for authorization.
func Inspect(tok string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
