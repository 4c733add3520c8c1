// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// validate checks that the merged [StructuredConfig] is complete enough to
// start the server. All problems are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 ||
		cfg.App.HashKey == "" || cfg.App.AdminKey == "" || cfg.App.CredentialTTL < 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, ErrNoListenAddress)
	}
	if cfg.Server.TokenRateLimit <= 0 || cfg.Server.TokenRateBurst <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if addr := cfg.Adapter.CompanyRegistryAddress; addr != "" {
		if u, err := url.Parse(addr); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ErrInvalidAdapterConfigs)
		}
	}
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.CredentialExpiryInterval < 0 || cfg.Workers.CredentialExpiryWindow < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
