package http

import (
	"context"

	"github.com/MKhiriev/go-chat-config/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	exchangeTokenFn func(ctx context.Context, request models.TokenRequest) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) ExchangeToken(ctx context.Context, request models.TokenRequest) (models.Token, error) {
	return m.exchangeTokenFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockApplicationService struct {
	registerFn func(ctx context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error)
}

func (m *mockApplicationService) Register(ctx context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error) {
	return m.registerFn(ctx, request)
}

type mockCredentialService struct {
	issueFn    func(ctx context.Context, request models.IssueCredentialRequest) (models.Credential, error)
	validateFn func(ctx context.Context, request models.ValidateCredentialRequest) (models.Credential, error)
	revokeFn   func(ctx context.Context, code string) (bool, error)
	rotateFn   func(ctx context.Context, code string) (models.Credential, error)
	currentFn  func(ctx context.Context, code string) (models.Credential, error)
}

func (m *mockCredentialService) Issue(ctx context.Context, request models.IssueCredentialRequest) (models.Credential, error) {
	return m.issueFn(ctx, request)
}

func (m *mockCredentialService) Validate(ctx context.Context, request models.ValidateCredentialRequest) (models.Credential, error) {
	return m.validateFn(ctx, request)
}

func (m *mockCredentialService) Revoke(ctx context.Context, code string) (bool, error) {
	return m.revokeFn(ctx, code)
}

func (m *mockCredentialService) Rotate(ctx context.Context, code string) (models.Credential, error) {
	return m.rotateFn(ctx, code)
}

func (m *mockCredentialService) Current(ctx context.Context, code string) (models.Credential, error) {
	return m.currentFn(ctx, code)
}

type mockConfigService struct {
	resolveFn         func(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error)
	setDefaultFn      func(ctx context.Context, code, key string, value any) (models.UnifiedConfiguration, error)
	updateFn          func(ctx context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error)
	setOverrideFn     func(ctx context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error)
	listOverridesFn   func(ctx context.Context, code, companyID string, includeInactive bool) ([]models.CompanyOverride, error)
	copyFn            func(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error)
	restoreDefaultsFn func(ctx context.Context, code, companyID string) (bool, models.UnifiedConfiguration, error)
}

func (m *mockConfigService) Resolve(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	return m.resolveFn(ctx, code, companyID)
}

func (m *mockConfigService) SetApplicationDefault(ctx context.Context, code, key string, value any) (models.UnifiedConfiguration, error) {
	return m.setDefaultFn(ctx, code, key, value)
}

func (m *mockConfigService) UpdateApplicationConfig(ctx context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error) {
	return m.updateFn(ctx, code, values)
}

func (m *mockConfigService) SetCompanyOverride(ctx context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error) {
	return m.setOverrideFn(ctx, code, companyID, key, request)
}

func (m *mockConfigService) ListCompanyOverrides(ctx context.Context, code, companyID string, includeInactive bool) ([]models.CompanyOverride, error) {
	return m.listOverridesFn(ctx, code, companyID, includeInactive)
}

func (m *mockConfigService) CopyFromApplication(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	return m.copyFn(ctx, code, companyID)
}

func (m *mockConfigService) RestoreDefaults(ctx context.Context, code, companyID string) (bool, models.UnifiedConfiguration, error) {
	return m.restoreDefaultsFn(ctx, code, companyID)
}
