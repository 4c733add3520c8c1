// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound requests: application
// codes, company identifiers, credential pairs and override payloads.
//
// Validation here is structural only. Whether a configuration key exists or a
// value fits its field is decided by the catalog inside the services.
//
// Services wrap their inner implementation with a validating decorator that
// calls Validate before delegating, so handlers and storage never see a
// malformed code or company ID.
package validators

import "context"

// Validator validates an arbitrary request value and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
