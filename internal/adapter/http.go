package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/utils"
)

// subscriptionPath is relative to the registry base URL.
const subscriptionPath = "/api/companies/{companyID}/applications/{code}"

type httpCompanyRegistry struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewCompanyRegistry builds the [CompanyRegistry] described by cfg. Without a
// CompanyRegistryAddress the returned registry trusts every subscription,
// which is correct only when an upstream gateway has already checked it.
func NewCompanyRegistry(cfg config.Adapter, logger *logger.Logger) (CompanyRegistry, error) {
	if strings.TrimSpace(cfg.CompanyRegistryAddress) == "" {
		logger.Warn().Msg("company registry address is not set, company subscriptions are trusted")
		return NewTrustingCompanyRegistry(logger), nil
	}

	return NewHTTPCompanyRegistry(cfg, logger)
}

// NewHTTPCompanyRegistry constructs an HTTP/REST implementation of
// [CompanyRegistry]. It normalises and validates the base URL from
// cfg.CompanyRegistryAddress and bounds every request with cfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL with
// scheme and host.
func NewHTTPCompanyRegistry(cfg config.Adapter, logger *logger.Logger) (CompanyRegistry, error) {
	baseURL, err := normalizeBaseURL(cfg.CompanyRegistryAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid company registry address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating company registry client")
	return &httpCompanyRegistry{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsSubscribed implements [CompanyRegistry]. It issues
// GET /api/companies/{companyID}/applications/{code}; 200 means subscribed
// and 404 means not subscribed. Any other status is an error.
func (h *httpCompanyRegistry) IsSubscribed(ctx context.Context, companyID, applicationCode string) (bool, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"companyID": companyID,
			"code":      applicationCode,
		}).
		Get(subscriptionPath)
	if err != nil {
		log.Err(err).Str("func", "*httpCompanyRegistry.IsSubscribed").Msg("company registry request failed")
		return false, fmt.Errorf("company registry request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		log.Err(err).
			Str("func", "*httpCompanyRegistry.IsSubscribed").
			Str("company_id", companyID).
			Int("status", resp.StatusCode()).
			Msg("company registry answered with an error")
		return false, err
	}

	return true, nil
}
