// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for services this server depends on.
//
// The only dependency today is the company registry, which knows which
// companies subscribe to which applications. [NewCompanyRegistry] returns an
// HTTP/REST implementation when an address is configured and an
// upstream-trusting one otherwise.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/company_registry_mock.go -package=mock

// CompanyRegistry answers whether a company is subscribed to an application.
type CompanyRegistry interface {
	// IsSubscribed reports whether companyID subscribes to the application
	// identified by applicationCode. An error means the registry could not
	// answer; a plain "no" is (false, nil).
	IsSubscribed(ctx context.Context, companyID, applicationCode string) (bool, error)
}
