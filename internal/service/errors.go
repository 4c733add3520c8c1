package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error a service returns to a caller wraps exactly one
// of them, so transports can map errors with errors.Is alone.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	ErrApplicationExists   = fmt.Errorf("%w: application code is already registered", ErrConflict)

	// ErrCredentialNotFound is returned for an unknown code, an inactive
	// credential and a wrong token alike.
	ErrCredentialNotFound = fmt.Errorf("credential %w", ErrNotFound)
	ErrCredentialExists   = fmt.Errorf("%w: application already has an active credential", ErrConflict)
	ErrCredentialExpired  = fmt.Errorf("credential %w", ErrExpired)

	ErrUnknownKey         = fmt.Errorf("configuration key %w", ErrNotFound)
	ErrCompanyNotFound    = fmt.Errorf("company %w", ErrNotFound)
	ErrOverrideNotFound   = fmt.Errorf("company override %w", ErrNotFound)
	ErrInvalidValue       = fmt.Errorf("%w: invalid configuration value", ErrValidation)
	ErrCompanyIDRequired  = fmt.Errorf("%w: company ID is required", ErrValidation)
	ErrApplicationIDMatch = fmt.Errorf("%w: application ID does not belong to the code", ErrValidation)

	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)
	ErrWrongApplication        = fmt.Errorf("%w: token was not issued for this application", ErrForbidden)
	ErrWriteScopeRequired      = fmt.Errorf("%w: config:write scope is required", ErrForbidden)

	ErrCompanyRegistryUnavailable = errors.New("company registry is unavailable")
	ErrTokenCreationFailed        = errors.New("token creation failed")
	ErrVersionIsNotSpecified      = errors.New("application version is not specified")
)
