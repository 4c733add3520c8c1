// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// configuration service handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is the single answer to every failed credential
	// check on the token endpoint, whatever the cause.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAdminKeyRequired is returned by management endpoints called without
	// a valid X-Admin-Key header.
	MsgAdminKeyRequired = "admin key is missing or invalid"

	// MsgTooManyRequests is returned when a client exceeds the token
	// exchange rate limit.
	MsgTooManyRequests = "too many requests"

	// MsgCompanyRegistryUnavailable is returned when a company subscription
	// cannot be checked.
	MsgCompanyRegistryUnavailable = "company registry is unavailable"

	// MsgNotFound is written for unknown routes and methods.
	MsgNotFound = "not found"
)
