package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
)

// credentialService is the concrete implementation of CredentialService.
// Access tokens are stored as HMAC fingerprints and secrets as bcrypt
// hashes; the plain values leave the service only from Issue and Rotate.
type credentialService struct {
	// credentialRepository persists credentials.
	credentialRepository store.CredentialRepository

	// applicationRepository resolves codes to applications on issue.
	applicationRepository store.ApplicationRepository

	// minter generates new token/secret pairs.
	minter *credentialMinter

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService. cfg.HashKey must be the
// key the stored fingerprints were computed with.
func NewCredentialService(credentialRepository store.CredentialRepository, applicationRepository store.ApplicationRepository, cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository:  credentialRepository,
		applicationRepository: applicationRepository,
		minter:                newCredentialMinter(cfg.HashKey, cfg.CredentialTTL),
		logger:                logger,
	}
}

// Issue creates a credential for an application that has none active.
//
// Returns:
//   - ErrApplicationNotFound if the code is unknown or the application is
//     inactive.
//   - ErrApplicationIDMatch if request.ApplicationID is set and belongs to
//     another code.
//   - ErrCredentialExists if the code already has an active credential.
func (s *credentialService) Issue(ctx context.Context, request models.IssueCredentialRequest) (models.Credential, error) {
	log := logger.FromContext(ctx)

	app, err := s.applicationRepository.GetByCode(ctx, request.Code)
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			return models.Credential{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*credentialService.Issue").Str("code", request.Code).Msg("application lookup failed")
		return models.Credential{}, fmt.Errorf("application lookup failed: %w", err)
	}
	if !app.Active {
		return models.Credential{}, ErrApplicationNotFound
	}
	if request.ApplicationID != 0 && request.ApplicationID != app.ApplicationID {
		return models.Credential{}, ErrApplicationIDMatch
	}

	credential, err := s.minter.mint()
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Issue").Msg("error minting credential")
		return models.Credential{}, err
	}
	credential.ApplicationID = app.ApplicationID
	credential.Code = app.Code

	issued, err := s.credentialRepository.Create(ctx, credential)
	if err != nil {
		if errors.Is(err, store.ErrActiveCredentialExists) {
			return models.Credential{}, ErrCredentialExists
		}
		log.Err(err).Str("func", "*credentialService.Issue").Str("code", app.Code).Msg("credential creation ended with error")
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	log.Info().Str("code", issued.Code).Int64("credential_id", issued.CredentialID).Msg("credential issued")
	return issued, nil
}

// Validate checks a code/token pair against the active credential of the
// code. It never mutates state.
//
// An unknown code, an inactive credential and a wrong token all yield
// ErrCredentialNotFound, and the fingerprint comparison runs in every case
// so timing does not tell them apart. ErrCredentialExpired is only reported
// for a matching token.
func (s *credentialService) Validate(ctx context.Context, request models.ValidateCredentialRequest) (models.Credential, error) {
	log := logger.FromContext(ctx)
	presented := s.minter.fingerprint(request.AccessToken)

	credential, err := s.credentialRepository.GetActiveByCode(ctx, request.Code)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			utils.EqualHashes(presented, s.minter.fingerprint(""))
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialService.Validate").Msg("credential lookup failed")
		return models.Credential{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if !utils.EqualHashes(presented, credential.AccessTokenHash) {
		log.Warn().Str("code", request.Code).Msg("access token mismatch")
		return models.Credential{}, ErrCredentialNotFound
	}

	if credential.IsExpired(s.minter.now()) {
		return models.Credential{}, ErrCredentialExpired
	}

	return credential.Redacted(), nil
}

// Current returns the active credential of code without its secrets.
// ErrCredentialNotFound is returned when the code has none and
// ErrCredentialExpired when it has expired.
func (s *credentialService) Current(ctx context.Context, code string) (models.Credential, error) {
	credential, err := s.credentialRepository.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.Credential{}, ErrCredentialNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.Current").Str("code", code).Msg("credential lookup failed")
		return models.Credential{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if credential.IsExpired(s.minter.now()) {
		return models.Credential{}, ErrCredentialExpired
	}

	return credential.Redacted(), nil
}

// Revoke deactivates the active credential of code. It reports true for an
// already revoked credential as well; only a code that never had a
// credential yields ErrCredentialNotFound.
func (s *credentialService) Revoke(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx)

	changed, err := s.credentialRepository.Deactivate(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return false, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialService.Revoke").Str("code", code).Msg("credential revocation failed")
		return false, fmt.Errorf("credential revocation failed: %w", err)
	}

	log.Info().Str("code", code).Bool("changed", changed).Msg("credential revoked")
	return true, nil
}

// Rotate replaces the active credential of code with a new one in a single
// transaction and returns the new plain token and secret.
func (s *credentialService) Rotate(ctx context.Context, code string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	replacement, err := s.minter.mint()
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Rotate").Msg("error minting credential")
		return models.Credential{}, err
	}
	// scopes of the replaced credential are kept
	replacement.Scopes = ""

	rotated, err := s.credentialRepository.Rotate(ctx, code, replacement)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCredentialNotFound):
			return models.Credential{}, ErrCredentialNotFound
		case errors.Is(err, store.ErrActiveCredentialExists):
			return models.Credential{}, ErrCredentialExists
		}
		log.Err(err).Str("func", "*credentialService.Rotate").Str("code", code).Msg("credential rotation failed")
		return models.Credential{}, fmt.Errorf("credential rotation failed: %w", err)
	}

	log.Info().Str("code", code).Int64("credential_id", rotated.CredentialID).Msg("credential rotated")
	return rotated, nil
}
