package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a malformed company registry
	// address or a negative outbound timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing keys or token parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a non-positive token rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNoListenAddress indicates that neither HTTP nor gRPC is enabled.
	ErrNoListenAddress = errors.New("no HTTP or gRPC address configured")
	// ErrInvalidWorkerConfigs indicates negative worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
