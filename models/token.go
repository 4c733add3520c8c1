package models

import (
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an application credential.
//
// The subject claim carries the application code, Scope carries the space
// separated scopes of the credential the token was exchanged for and
// CredentialID names that credential.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Scope is a space separated list, e.g. "config:read config:write".
	Scope string `json:"scope,omitempty"`

	// CredentialID identifies the credential the token was exchanged for.
	// The token stops authorizing once that credential is no longer active.
	CredentialID int64 `json:"cid,omitempty"`

	SignedString string `json:"-"`

	// ApplicationCode is the parsed subject claim.
	ApplicationCode string `json:"-"`
}

// HasScope reports whether the token grants scope.
func (t *Token) HasScope(scope string) bool {
	return slices.Contains(strings.Fields(t.Scope), scope)
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
