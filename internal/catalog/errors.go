package catalog

import "errors"

var (
	// ErrSchema reports a mismatch between the catalog and a storage schema.
	// It is fatal and only returned by startup checks.
	ErrSchema = errors.New("configuration schema error")

	// ErrUnknownKey is returned for keys and columns without a catalog entry.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue is returned when a value does not parse as, or does not
	// have the type of, the field it is written to.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrOutOfRange is returned for numbers outside the field bounds and for
	// strings outside the field's allowed set.
	ErrOutOfRange = errors.New("configuration value out of range")
)
