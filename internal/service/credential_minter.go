package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenPrefix = "ak_"
	secretPrefix      = "sk_"
	randomPartLength  = 40
)

// credentialMinter generates fresh access token and secret pairs together
// with the fingerprints that get stored.
type credentialMinter struct {
	hashKey    string
	ttl        time.Duration
	bcryptCost int
	now        func() time.Time
}

func newCredentialMinter(hashKey string, ttl time.Duration) *credentialMinter {
	return &credentialMinter{
		hashKey:    hashKey,
		ttl:        ttl,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// mint returns an unsaved credential carrying both the plain values and
// their fingerprints.
func (m *credentialMinter) mint() (models.Credential, error) {
	token, err := utils.GenerateToken(accessTokenPrefix, randomPartLength)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error generating access token: %w", err)
	}

	secret, err := utils.GenerateToken(secretPrefix, randomPartLength)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error generating secret: %w", err)
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(secret), m.bcryptCost)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error hashing secret: %w", err)
	}
	hashed := string(secretHash)

	credential := models.Credential{
		AccessToken:     token,
		Secret:          secret,
		AccessTokenHash: m.fingerprint(token),
		SecretHash:      &hashed,
		Scopes:          strings.Join(models.DefaultScopes, " "),
		Active:          true,
	}
	if m.ttl > 0 {
		expiresAt := m.now().Add(m.ttl).UTC()
		credential.ExpiresAt = &expiresAt
	}

	return credential, nil
}

func (m *credentialMinter) fingerprint(token string) string {
	return utils.HashString(token, m.hashKey)
}
