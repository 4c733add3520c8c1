package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/validators"
	"github.com/MKhiriev/go-chat-config/models"
)

// CredentialValidationService rejects malformed credential requests before
// they reach the wrapped CredentialService.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CredentialValidationService) Issue(ctx context.Context, request models.IssueCredentialRequest) (models.Credential, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Issue(ctx, request)
}

// Validate answers ErrCredentialNotFound for malformed pairs too, so the
// response does not tell a bad code from a bad token.
func (v *CredentialValidationService) Validate(ctx context.Context, request models.ValidateCredentialRequest) (models.Credential, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Credential{}, ErrCredentialNotFound
	}
	return v.inner.Validate(ctx, request)
}

func (v *CredentialValidationService) Revoke(ctx context.Context, code string) (bool, error) {
	if err := v.validator.Validate(ctx, code, validators.FieldCode); err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Revoke(ctx, code)
}

func (v *CredentialValidationService) Rotate(ctx context.Context, code string) (models.Credential, error) {
	if err := v.validator.Validate(ctx, code, validators.FieldCode); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Rotate(ctx, code)
}

func (v *CredentialValidationService) Current(ctx context.Context, code string) (models.Credential, error) {
	if err := v.validator.Validate(ctx, code, validators.FieldCode); err != nil {
		return models.Credential{}, ErrCredentialNotFound
	}
	return v.inner.Current(ctx, code)
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

// ApplicationValidationService rejects malformed registrations.
type ApplicationValidationService struct {
	inner     ApplicationService
	validator validators.Validator
}

func NewApplicationValidationService() ApplicationServiceWrapper {
	return &ApplicationValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ApplicationValidationService) Register(ctx context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.RegisteredApplication{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Register(ctx, request)
}

func (v *ApplicationValidationService) Wrap(inner ApplicationService) ApplicationService {
	v.inner = inner
	return v
}

// ConfigValidationService checks codes, company IDs and override payloads.
// Keys and values are checked against the catalog by the wrapped service.
type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ConfigValidationService) Resolve(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	if err := v.validateCode(ctx, code); err != nil {
		return models.UnifiedConfiguration{}, err
	}
	if companyID != "" {
		if err := v.validator.Validate(ctx, companyID, validators.FieldCompanyID); err != nil {
			return models.UnifiedConfiguration{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	return v.inner.Resolve(ctx, code, companyID)
}

func (v *ConfigValidationService) SetApplicationDefault(ctx context.Context, code, key string, value any) (models.UnifiedConfiguration, error) {
	if err := v.validateCode(ctx, code); err != nil {
		return models.UnifiedConfiguration{}, err
	}
	return v.inner.SetApplicationDefault(ctx, code, key, value)
}

func (v *ConfigValidationService) UpdateApplicationConfig(ctx context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error) {
	if err := v.validateCode(ctx, code); err != nil {
		return models.UnifiedConfiguration{}, err
	}
	return v.inner.UpdateApplicationConfig(ctx, code, values)
}

func (v *ConfigValidationService) SetCompanyOverride(ctx context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error) {
	if err := v.validateCompany(ctx, code, companyID); err != nil {
		return models.UnifiedConfiguration{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UnifiedConfiguration{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.SetCompanyOverride(ctx, code, companyID, key, request)
}

func (v *ConfigValidationService) ListCompanyOverrides(ctx context.Context, code, companyID string, includeInactive bool) ([]models.CompanyOverride, error) {
	if err := v.validateCompany(ctx, code, companyID); err != nil {
		return nil, err
	}
	return v.inner.ListCompanyOverrides(ctx, code, companyID, includeInactive)
}

func (v *ConfigValidationService) CopyFromApplication(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	if err := v.validateCompany(ctx, code, companyID); err != nil {
		return models.UnifiedConfiguration{}, err
	}
	return v.inner.CopyFromApplication(ctx, code, companyID)
}

func (v *ConfigValidationService) RestoreDefaults(ctx context.Context, code, companyID string) (bool, models.UnifiedConfiguration, error) {
	if err := v.validateCompany(ctx, code, companyID); err != nil {
		return false, models.UnifiedConfiguration{}, err
	}
	return v.inner.RestoreDefaults(ctx, code, companyID)
}

func (v *ConfigValidationService) Wrap(inner ConfigService) ConfigService {
	v.inner = inner
	return v
}

func (v *ConfigValidationService) validateCode(ctx context.Context, code string) error {
	if err := v.validator.Validate(ctx, code, validators.FieldCode); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *ConfigValidationService) validateCompany(ctx context.Context, code, companyID string) error {
	if err := v.validateCode(ctx, code); err != nil {
		return err
	}
	if companyID == "" {
		return ErrCompanyIDRequired
	}
	if err := v.validator.Validate(ctx, companyID, validators.FieldCompanyID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
