// Package auth verifies access tokens issued by the external identity
// provider and carries the resulting identity through request contexts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
)

var ErrUnauthorized = errors.New("unauthorized")

type claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
}

// Tokens validates HS256 tokens. It can also mint them, which the seeder and
// tests use in place of the identity provider.
type Tokens struct {
	secret []byte
	issuer string
}

func NewTokens(secret, issuer string) *Tokens {
	return &Tokens{secret: []byte(secret), issuer: issuer}
}

func (t *Tokens) Issue(id account.Identity, ttl time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    id.Email,
		UserType: string(id.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify returns the identity in token. All failures wrap ErrUnauthorized.
func (t *Tokens) Verify(token string) (account.Identity, error) {
	if token == "" {
		return account.Identity{}, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}

	var c claims

	_, err := jwt.ParseWithClaims(token, &c, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return account.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if c.Subject == "" {
		return account.Identity{}, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}

	return account.Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   account.ParseRole(c.UserType),
	}, nil
}
