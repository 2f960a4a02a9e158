package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// LoginID extracts the staff login id from the claims, preferring the
// preferred_username claim and falling back to sub
func (c Claims) LoginID() string {
	if v, ok := c["preferred_username"].(string); ok && v != "" {
		return v
	}
	if v, ok := c["sub"].(string); ok {
		return v
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
