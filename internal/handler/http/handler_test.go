package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testAdminKey   = "admin-secret"
	readToken      = "read-token"
	writeToken     = "write-token"
	otherAppsToken = "other-token"
)

var testConfig = config.StructuredConfig{
	App:    config.App{AdminKey: testAdminKey},
	Server: config.Server{TokenRateLimit: 100, TokenRateBurst: 100},
}

// tokenParser accepts three fixed tokens.
func tokenParser(_ context.Context, raw string) (models.Token, error) {
	switch raw {
	case readToken:
		return models.Token{ApplicationCode: "ACME", Scope: models.ScopeConfigRead}, nil
	case writeToken:
		return models.Token{ApplicationCode: "ACME", Scope: "config:read config:write"}, nil
	case otherAppsToken:
		return models.Token{ApplicationCode: "GLOBEX", Scope: "config:read config:write"}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func newTestServices() *service.Services {
	return &service.Services{
		AppInfoService:     &mockAppInfoService{version: "test-version"},
		AuthService:        &mockAuthService{parseTokenFn: tokenParser},
		ApplicationService: &mockApplicationService{},
		CredentialService:  &mockCredentialService{},
		ConfigService:      &mockConfigService{},
	}
}

func serve(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func admin() map[string]string {
	return map[string]string{adminKeyHeader: testAdminKey}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, testConfig, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testAdminKey, h.adminKey)
	assert.NotNil(t, h.tokenLimiter)
}

func TestNewHandler_RateLimitDisabled(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h.tokenLimiter)
}

// ─────────────────────────────────────────────
// Configuration routes
// ─────────────────────────────────────────────

func TestResolveConfiguration(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		resolveFn: func(_ context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
			assert.Equal(t, "ACME", code)
			assert.Equal(t, "C1", companyID)
			return models.UnifiedConfiguration{
				ApplicationCode: code,
				CompanyID:       companyID,
				Values:          map[string]any{"chat.maxMessageLength": int64(500)},
				Sources:         map[string]models.ValueSource{"chat.maxMessageLength": models.SourceCompany},
			}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration?company_id=C1", "", bearer(readToken))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"application_code": "ACME",
		"application_id": 0,
		"company_id": "C1",
		"values": {"chat.maxMessageLength": 500},
		"sources": {"chat.maxMessageLength": "company"}
	}`, rec.Body.String())
}

func TestResolveConfiguration_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown application", service.ErrApplicationNotFound, http.StatusNotFound},
		{"unknown company", service.ErrCompanyNotFound, http.StatusNotFound},
		{"bad company id", service.ErrCompanyIDRequired, http.StatusBadRequest},
		{"registry down", errors.Join(service.ErrCompanyRegistryUnavailable, errors.New("dial tcp")), http.StatusBadGateway},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.ConfigService = &mockConfigService{
				resolveFn: func(context.Context, string, string) (models.UnifiedConfiguration, error) {
					return models.UnifiedConfiguration{}, tt.err
				},
			}
			h := NewHandler(svcs, testConfig, logger.Nop())

			rec := serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration", "", bearer(readToken))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", errorMessage(t, rec))
			}
		})
	}
}

func TestConfigurationRoutes_Authentication(t *testing.T) {
	h := NewHandler(newTestServices(), testConfig, logger.Nop())

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"not bearer", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized},
		{"invalid token", bearer("garbage"), http.StatusUnauthorized},
		{"token of another application", bearer(otherAppsToken), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration", "", tt.headers)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWriteRoutes_RequireWriteScope(t *testing.T) {
	h := NewHandler(newTestServices(), testConfig, logger.Nop())

	routes := []struct{ method, target, body string }{
		{http.MethodPatch, "/api/v1/applications/ACME/configuration", `{}`},
		{http.MethodPut, "/api/v1/applications/ACME/configuration/chat.allowEdit", `{"value":false}`},
		{http.MethodPut, "/api/v1/applications/ACME/companies/C1/overrides/chat.allowEdit", `{"value":"false"}`},
		{http.MethodPost, "/api/v1/applications/ACME/companies/C1/overrides/copy", ``},
		{http.MethodPost, "/api/v1/applications/ACME/companies/C1/overrides/restore", ``},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := serve(t, h, route.method, route.target, route.body, bearer(readToken))
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestSetApplicationDefault(t *testing.T) {
	var gotValue any
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		setDefaultFn: func(_ context.Context, code, key string, value any) (models.UnifiedConfiguration, error) {
			assert.Equal(t, "ACME", code)
			assert.Equal(t, "chat.maxMessageLength", key)
			gotValue = value
			return models.UnifiedConfiguration{ApplicationCode: code}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPut, "/api/v1/applications/ACME/configuration/chat.maxMessageLength", `{"value": 2500}`, bearer(writeToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, json.Number("2500"), gotValue)

	rec = serve(t, h, http.MethodPut, "/api/v1/applications/ACME/configuration/chat.maxMessageLength", `{"value": null}`, bearer(writeToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotValue)

	rec = serve(t, h, http.MethodPut, "/api/v1/applications/ACME/configuration/chat.maxMessageLength", `{}`, bearer(writeToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplicationConfig(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		updateFn: func(_ context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error) {
			assert.Equal(t, map[string]any{"chat.allowEmojis": false, "interface.theme": nil}, values)
			return models.UnifiedConfiguration{}, service.ErrInvalidValue
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPatch, "/api/v1/applications/ACME/configuration", `{"chat.allowEmojis": false, "interface.theme": null}`, bearer(writeToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPatch, "/api/v1/applications/ACME/configuration", `{not json`, bearer(writeToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", errorMessage(t, rec))
}

// ─────────────────────────────────────────────
// Company override routes
// ─────────────────────────────────────────────

func TestSetCompanyOverride(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		setOverrideFn: func(_ context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error) {
			assert.Equal(t, "ACME", code)
			assert.Equal(t, "C1", companyID)
			assert.Equal(t, "chat.maxMessageLength", key)
			assert.Equal(t, models.SetCompanyOverrideRequest{Value: "500", Type: models.ValueTypeNumber}, request)
			return models.UnifiedConfiguration{ApplicationCode: code, CompanyID: companyID}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPut, "/api/v1/applications/ACME/companies/C1/overrides/chat.maxMessageLength",
		`{"value":"500","type":"number"}`, bearer(writeToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCompanyOverrides(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		listOverridesFn: func(_ context.Context, _, _ string, includeInactive bool) ([]models.CompanyOverride, error) {
			assert.True(t, includeInactive)
			return []models.CompanyOverride{}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/v1/applications/ACME/companies/C1/overrides?include_inactive=true", "", bearer(readToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRestoreDefaults(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		restoreDefaultsFn: func(context.Context, string, string) (bool, models.UnifiedConfiguration, error) {
			return true, models.UnifiedConfiguration{ApplicationCode: "ACME"}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/applications/ACME/companies/C1/overrides/restore", "", bearer(writeToken))
	require.Equal(t, http.StatusOK, rec.Code)

	var body restoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Restored)
	assert.Equal(t, "ACME", body.Configuration.ApplicationCode)
}

func TestCopyFromApplication_OverrideNotSubscribed(t *testing.T) {
	svcs := newTestServices()
	svcs.ConfigService = &mockConfigService{
		copyFn: func(context.Context, string, string) (models.UnifiedConfiguration, error) {
			return models.UnifiedConfiguration{}, service.ErrCompanyNotFound
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/applications/ACME/companies/C9/overrides/copy", "", bearer(writeToken))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Management routes
// ─────────────────────────────────────────────

func TestManagementRoutes_RequireAdminKey(t *testing.T) {
	h := NewHandler(newTestServices(), testConfig, logger.Nop())

	for name, headers := range map[string]map[string]string{
		"missing": nil,
		"wrong":   {adminKeyHeader: "guess"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, h, http.MethodPost, "/api/v1/applications", `{"code":"ACME"}`, headers)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestManagementRoutes_DisabledWithoutAdminKey(t *testing.T) {
	h := NewHandler(newTestServices(), config.StructuredConfig{}, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/credentials/ACME/revoke", "", map[string]string{adminKeyHeader: ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterApplication(t *testing.T) {
	svcs := newTestServices()
	svcs.ApplicationService = &mockApplicationService{
		registerFn: func(_ context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error) {
			assert.Equal(t, "ACME", request.Code)
			return models.RegisteredApplication{
				Application: models.Application{ApplicationID: 1, Code: "ACME"},
				Credential:  models.Credential{Code: "ACME", AccessToken: "ak_x", Secret: "sk_y"},
			}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/applications", `{"code":"ACME","name":"Acme"}`, admin())
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.RegisteredApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ak_x", body.Credential.AccessToken)
	assert.Equal(t, "sk_y", body.Credential.Secret)
	assert.NotContains(t, rec.Body.String(), "access_token_hash")
}

func TestRegisterApplication_Conflict(t *testing.T) {
	svcs := newTestServices()
	svcs.ApplicationService = &mockApplicationService{
		registerFn: func(context.Context, models.RegisterApplicationRequest) (models.RegisteredApplication, error) {
			return models.RegisteredApplication{}, service.ErrApplicationExists
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/applications", `{"code":"ACME"}`, admin())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCredentialRoutes(t *testing.T) {
	svcs := newTestServices()
	svcs.CredentialService = &mockCredentialService{
		issueFn: func(_ context.Context, request models.IssueCredentialRequest) (models.Credential, error) {
			return models.Credential{}, service.ErrCredentialExists
		},
		validateFn: func(_ context.Context, request models.ValidateCredentialRequest) (models.Credential, error) {
			if request.AccessToken == "ak_expired" {
				return models.Credential{}, service.ErrCredentialExpired
			}
			return models.Credential{}, service.ErrCredentialNotFound
		},
		revokeFn: func(_ context.Context, code string) (bool, error) {
			assert.Equal(t, "ACME", code)
			return true, nil
		},
		rotateFn: func(_ context.Context, code string) (models.Credential, error) {
			return models.Credential{Code: code, AccessToken: "ak_new"}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/credentials", `{"code":"ACME"}`, admin())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/v1/credentials/validate", `{"code":"ACME","access_token":"ak_wrong"}`, admin())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/v1/credentials/validate", `{"code":"ACME","access_token":"ak_expired"}`, admin())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/v1/credentials/ACME/revoke", "", admin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revoked":true}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/api/v1/credentials/ACME/rotate", "", admin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ak_new")
}

// ─────────────────────────────────────────────
// Token exchange
// ─────────────────────────────────────────────

func TestExchangeToken_UniformFailure(t *testing.T) {
	var messages []string
	for _, cause := range []error{service.ErrCredentialNotFound, service.ErrCredentialExpired} {
		svcs := newTestServices()
		svcs.AuthService = &mockAuthService{
			exchangeTokenFn: func(context.Context, models.TokenRequest) (models.Token, error) {
				return models.Token{}, cause
			},
		}
		h := NewHandler(svcs, testConfig, logger.Nop())

		rec := serve(t, h, http.MethodPost, "/api/v1/auth/token", `{"code":"ACME","access_token":"ak_x"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		messages = append(messages, errorMessage(t, rec))
	}
	assert.Equal(t, messages[0], messages[1])
}

func TestExchangeToken_Success(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthService{
		exchangeTokenFn: func(_ context.Context, request models.TokenRequest) (models.Token, error) {
			assert.Equal(t, "sk_y", request.Secret)
			return models.Token{SignedString: "jwt.value.here"}, nil
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/auth/token", `{"code":"ACME","access_token":"ak_x","secret":"sk_y"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jwt.value.here", body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)
}

func TestBearerToken_RejectedAfterRevoke(t *testing.T) {
	appCfg := config.App{TokenSignKey: "sign-key", TokenIssuer: "chat-config", TokenDuration: time.Hour}
	active := true
	credentials := &mockCredentialService{
		validateFn: func(_ context.Context, request models.ValidateCredentialRequest) (models.Credential, error) {
			return models.Credential{CredentialID: 9, Code: request.Code, Scopes: "config:read config:write", Active: true}, nil
		},
		currentFn: func(_ context.Context, code string) (models.Credential, error) {
			if !active {
				return models.Credential{}, service.ErrCredentialNotFound
			}
			return models.Credential{CredentialID: 9, Code: code, Active: true}, nil
		},
		revokeFn: func(context.Context, string) (bool, error) {
			active = false
			return true, nil
		},
	}
	svcs := newTestServices()
	svcs.CredentialService = credentials
	svcs.AuthService = service.NewAuthService(credentials, appCfg, logger.Nop())
	svcs.ConfigService = &mockConfigService{
		resolveFn: func(_ context.Context, code, _ string) (models.UnifiedConfiguration, error) {
			return models.UnifiedConfiguration{ApplicationCode: code}, nil
		},
	}
	cfg := testConfig
	cfg.App = appCfg
	cfg.App.AdminKey = testAdminKey
	h := NewHandler(svcs, cfg, logger.Nop())

	rec := serve(t, h, http.MethodPost, "/api/v1/auth/token", `{"code":"ACME","access_token":"ak_x"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var issued models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))

	rec = serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration", "", bearer(issued.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/v1/credentials/ACME/revoke", "", admin())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration", "", bearer(issued.AccessToken))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = serve(t, h, http.MethodPut, "/api/v1/applications/ACME/configuration/chat.allowEmojis", `{"value":false}`, bearer(issued.AccessToken))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_CredentialLookupFailure(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, errors.New("connection reset")
		},
	}
	h := NewHandler(svcs, testConfig, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/v1/applications/ACME/configuration", "", bearer(readToken))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExchangeToken_RateLimited(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthService{
		exchangeTokenFn: func(context.Context, models.TokenRequest) (models.Token, error) {
			return models.Token{SignedString: "jwt"}, nil
		},
	}
	cfg := testConfig
	cfg.Server.TokenRateLimit = 0.001
	cfg.Server.TokenRateBurst = 1
	h := NewHandler(svcs, cfg, logger.Nop())
	router := h.Init()

	statuses := make([]int, 0, 2)
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{}`))
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, statuses)
}

// ─────────────────────────────────────────────
// Version and unknown routes
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := NewHandler(newTestServices(), testConfig, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/version", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := NewHandler(newTestServices(), testConfig, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/version", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", errorMessage(t, rec))
}
