// Package http implements the HTTP transport layer of the configuration
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, bearer token and admin key checks,
// write scope enforcement and rate limiting are handled in this package
// before requests are delegated to the service layer.
package http
