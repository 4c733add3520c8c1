// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// random credential generation, HTTP response writing, HTTP client
// initialization, JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ApplicationCodeCtxKey stores the code of the authenticated application.
	ApplicationCodeCtxKey = contextKey("applicationCode")

	// ScopeCtxKey stores the space separated scopes of the bearer token.
	ScopeCtxKey = contextKey("scope")
)

// WithApplication stores the authenticated application code and its token
// scopes in ctx.
func WithApplication(ctx context.Context, code, scope string) context.Context {
	ctx = context.WithValue(ctx, ApplicationCodeCtxKey, code)
	return context.WithValue(ctx, ScopeCtxKey, scope)
}

// GetApplicationCodeFromContext retrieves the authenticated application code.
//
// ok is false when the value is missing, empty or not a string.
func GetApplicationCodeFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(ApplicationCodeCtxKey).(string)
	return code, ok && code != ""
}

// GetScopeFromContext retrieves the token scopes stored by WithApplication.
func GetScopeFromContext(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(ScopeCtxKey).(string)
	return scope, ok
}
