package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It trades a valid application credential for a short-lived JWT whose
// subject is the application code.
type authService struct {
	// credentialService checks the presented code/token pair.
	credentialService CredentialService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService on top of credentialService
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentialService CredentialService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialService: credentialService,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// ExchangeToken issues a signed JWT for a valid credential.
//
// The secret is checked only when the stored credential has one; a wrong
// secret is reported as ErrCredentialNotFound, like a wrong token.
//
// Returns the token model on success or:
//   - ErrCredentialNotFound / ErrCredentialExpired from credential validation.
//   - ErrTokenCreationFailed if JWT generation fails.
func (a *authService) ExchangeToken(ctx context.Context, request models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	credential, err := a.credentialService.Validate(ctx, models.ValidateCredentialRequest{
		Code:        request.Code,
		AccessToken: request.AccessToken,
	})
	if err != nil {
		return models.Token{}, err
	}

	if credential.SecretHash != nil {
		if err = bcrypt.CompareHashAndPassword([]byte(*credential.SecretHash), []byte(request.Secret)); err != nil {
			if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				log.Err(err).Str("func", "*authService.ExchangeToken").Str("code", request.Code).Msg("error comparing secret")
			}
			return models.Token{}, ErrCredentialNotFound
		}
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, credential.Code, credential.CredentialID, credential.Scopes, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.ExchangeToken").Str("code", request.Code).Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string and checks that the
// credential it was exchanged for is still the active one of its
// application. Tokens of revoked, rotated or expired credentials are
// rejected.
//
// Any validation failure (expired, wrong issuer, malformed, inactive
// credential) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors. A failed credential lookup is
// returned as is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	credential, err := a.credentialService.Current(ctx, token.ApplicationCode)
	switch {
	case errors.Is(err, ErrCredentialNotFound), errors.Is(err, ErrCredentialExpired):
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	case err != nil:
		return models.Token{}, err
	case credential.CredentialID != token.CredentialID:
		logger.FromContext(ctx).Debug().
			Str("code", token.ApplicationCode).
			Int64("credential_id", token.CredentialID).
			Msg("token was issued for a replaced credential")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
