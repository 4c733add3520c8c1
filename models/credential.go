// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// Scopes granted to application credentials.
const (
	ScopeConfigRead  = "config:read"
	ScopeConfigWrite = "config:write"
)

// DefaultScopes are granted to every newly issued credential.
var DefaultScopes = []string{ScopeConfigRead, ScopeConfigWrite}

// Credential is an issued application credential: an opaque access token and
// an optional secret that authenticate calls scoped to one application.
//
// The plain AccessToken and Secret are populated only in the value returned
// by issue and rotate operations. The store keeps an HMAC fingerprint of the
// token and a bcrypt hash of the secret.
type Credential struct {
	// CredentialID is the server-assigned primary key.
	CredentialID int64 `json:"credential_id" db:"credential_id"`

	// ApplicationID references the owning application.
	ApplicationID int64 `json:"application_id" db:"application_id"`

	// Code duplicates the application code so lookups need no join.
	Code string `json:"code" db:"code"`

	// AccessToken is the plain token. Never persisted.
	AccessToken string `json:"access_token,omitempty" db:"-"`

	// Secret is the plain secret. Never persisted.
	Secret string `json:"secret,omitempty" db:"-"`

	// AccessTokenHash is the HMAC-SHA256 fingerprint of AccessToken.
	AccessTokenHash string `json:"-" db:"access_token_hash"`

	// SecretHash is the bcrypt hash of Secret. Legacy credentials have none.
	SecretHash *string `json:"-" db:"secret_hash"`

	// Scopes is a space separated scope list, e.g. "config:read config:write".
	Scopes string `json:"scopes" db:"scopes"`

	Active    bool       `json:"active" db:"active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

// ScopeList splits Scopes into individual scope names.
func (c Credential) ScopeList() []string {
	return strings.Fields(c.Scopes)
}

// HasScope reports whether the credential grants scope.
func (c Credential) HasScope(scope string) bool {
	return slices.Contains(c.ScopeList(), scope)
}

// IsExpired reports whether the credential has an expiry that is not after now.
func (c Credential) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// Redacted returns a copy without plain token and secret.
func (c Credential) Redacted() Credential {
	c.AccessToken = ""
	c.Secret = ""
	return c
}

// IssueCredentialRequest is the payload of the credential issuing endpoint.
type IssueCredentialRequest struct {
	ApplicationID int64  `json:"application_id"`
	Code          string `json:"code"`
}

// ValidateCredentialRequest carries the code/token pair to check.
type ValidateCredentialRequest struct {
	Code        string `json:"code"`
	AccessToken string `json:"access_token"`
}

// TokenRequest is exchanged for a bearer token. Secret is required only when
// the stored credential has one.
type TokenRequest struct {
	Code        string `json:"code"`
	AccessToken string `json:"access_token"`
	Secret      string `json:"secret"`
}

// TokenResponse is returned by the token exchange endpoint.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
