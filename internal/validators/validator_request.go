package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-chat-config/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldCode          = "code"
	FieldName          = "name"
	FieldApplicationID = "application_id"
	FieldCompanyID     = "company_id"
	FieldAccessToken   = "access_token"
	FieldValue         = "value"
	FieldType          = "type"
)

const (
	maxNameLength  = 200
	maxValueLength = 64 << 10
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestValidator checks the shape of inbound requests before they reach
// storage. Semantic checks against the configuration catalog happen in the
// services.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the type of obj. A bare string is validated as the
// single field named in fields, e.g. Validate(ctx, "ACME", FieldCode).
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateString(value, fields...)

	case models.RegisterApplicationRequest:
		return v.validateRegisterApplication(value, fields...)
	case *models.RegisterApplicationRequest:
		return v.validateRegisterApplication(*value, fields...)

	case models.IssueCredentialRequest:
		return v.validateIssueCredential(value, fields...)
	case *models.IssueCredentialRequest:
		return v.validateIssueCredential(*value, fields...)

	case models.ValidateCredentialRequest:
		return v.validateCodeAndToken(value.Code, value.AccessToken, fields...)
	case *models.ValidateCredentialRequest:
		return v.validateCodeAndToken(value.Code, value.AccessToken, fields...)

	case models.TokenRequest:
		return v.validateCodeAndToken(value.Code, value.AccessToken, fields...)
	case *models.TokenRequest:
		return v.validateCodeAndToken(value.Code, value.AccessToken, fields...)

	case models.SetCompanyOverrideRequest:
		return v.validateSetCompanyOverride(value, fields...)
	case *models.SetCompanyOverrideRequest:
		return v.validateSetCompanyOverride(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateString(value string, fields ...string) error {
	if len(fields) != 1 {
		return ErrUnknownField
	}

	switch fields[0] {
	case FieldCode:
		if !identifierPattern.MatchString(value) {
			return ErrInvalidCode
		}
	case FieldCompanyID:
		if !identifierPattern.MatchString(value) {
			return ErrInvalidCompanyID
		}
	case FieldAccessToken:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyAccessToken
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func (v *RequestValidator) validateRegisterApplication(request models.RegisterApplicationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if err := v.validateString(request.Code, FieldCode); err != nil {
				return err
			}
		case FieldName:
			if len(request.Name) > maxNameLength {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateIssueCredential(request models.IssueCredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldApplicationID}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if err := v.validateString(request.Code, FieldCode); err != nil {
				return err
			}
		case FieldApplicationID:
			// zero means "take it from the code"
			if request.ApplicationID < 0 {
				return ErrInvalidApplicationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCodeAndToken(code, token string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldAccessToken}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldCode:
			err = v.validateString(code, FieldCode)
		case FieldAccessToken:
			err = v.validateString(token, FieldAccessToken)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateSetCompanyOverride(request models.SetCompanyOverrideRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValue, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldValue:
			if len(request.Value) > maxValueLength {
				return ErrValueTooLong
			}
		case FieldType:
			// empty type takes the catalog type of the key
			if request.Type != "" && !request.Type.IsValid() {
				return ErrInvalidValueType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
