package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "ACME", 42, "config:read config:write", time.Hour, "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "ACME", token.ApplicationCode)
	assert.Equal(t, "ACME", token.Subject)
	assert.Equal(t, int64(42), token.CredentialID)
	assert.True(t, token.HasScope("config:write"))
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name, issuer, code, key string
		credentialID            int64
		duration                time.Duration
	}{
		{"empty issuer", "", "ACME", "secret", 1, time.Hour},
		{"empty code", "issuer", "", "secret", 1, time.Hour},
		{"no credential", "issuer", "ACME", "secret", 0, time.Hour},
		{"zero duration", "issuer", "ACME", "secret", 1, 0},
		{"empty key", "issuer", "ACME", "", 1, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.code, tt.credentialID, "config:read", tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issued, err := GenerateJWTToken("issuer", "ACME", 42, "config:read", time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "issuer")

	require.NoError(t, err)
	assert.Equal(t, "ACME", parsed.ApplicationCode)
	assert.Equal(t, "config:read", parsed.Scope)
	assert.Equal(t, int64(42), parsed.CredentialID)
	assert.True(t, parsed.HasScope("config:read"))
	assert.False(t, parsed.HasScope("config:write"))
	assert.Equal(t, issued.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issued, err := GenerateJWTToken("issuer", "ACME", 42, "", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other", "issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "issuer",
		Subject:   "ACME",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "secret", "issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("issuer", "ACME", 42, "", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_NoneAlgorithmRejected(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "issuer",
		Subject:   "ACME",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "secret", "issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_MissingCredential(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "issuer",
		Subject:   "ACME",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "secret", "issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", "secret", "issuer")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
