// Package auth verifies HS256 bearer tokens issued by the identity provider
// in front of this service.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the caller a valid token speaks for.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier returns nil when secret is empty, which disables checks.
func NewVerifier(secret, issuer string) *Verifier {
	if secret == "" {
		return nil
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Verifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

func (v *Verifier) Verify(token string) (Identity, error) {
	claims := &Claims{}

	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.Subject, Username: claims.Username, Email: claims.Email}, nil
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
