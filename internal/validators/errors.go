package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCode          = errors.New("application code must be 1-64 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidName          = errors.New("application name is too long")
	ErrInvalidApplicationID = errors.New("invalid application ID")
	ErrInvalidCompanyID     = errors.New("company ID must be 1-64 characters of letters, digits, '.', '_' or '-'")
	ErrEmptyAccessToken     = errors.New("access token is required")
	ErrInvalidValueType     = errors.New("invalid value type")
	ErrValueTooLong         = errors.New("override value is too long")
)
