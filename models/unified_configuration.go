// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// UnifiedConfiguration is the effective configuration of an application,
// optionally scoped to one company. It is computed on every read and never
// persisted.
//
// Values holds one entry per configuration key ("category.field"). Each value
// is an int64, bool, string or json.RawMessage depending on the key's type.
type UnifiedConfiguration struct {
	ApplicationCode string                 `json:"application_code"`
	ApplicationID   int64                  `json:"application_id"`
	CompanyID       string                 `json:"company_id,omitempty"`
	Values          map[string]any         `json:"values"`
	Sources         map[string]ValueSource `json:"sources"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// Keys returns the configuration keys in lexical order.
func (u UnifiedConfiguration) Keys() []string {
	return slices.Sorted(maps.Keys(u.Values))
}

// Int returns the numeric value of key.
func (u UnifiedConfiguration) Int(key string) (int64, bool) {
	v, ok := u.Values[key].(int64)
	return v, ok
}

// Bool returns the boolean value of key.
func (u UnifiedConfiguration) Bool(key string) (bool, bool) {
	v, ok := u.Values[key].(bool)
	return v, ok
}

// String returns the string value of key.
func (u UnifiedConfiguration) String(key string) (string, bool) {
	v, ok := u.Values[key].(string)
	return v, ok
}

// JSON returns the raw JSON value of key.
func (u UnifiedConfiguration) JSON(key string) (json.RawMessage, bool) {
	v, ok := u.Values[key].(json.RawMessage)
	return v, ok
}

// Source tells which layer supplied key.
func (u UnifiedConfiguration) Source(key string) ValueSource {
	return u.Sources[key]
}

// Category returns the values of one category with the category prefix
// stripped, e.g. Category("chat")["maxMessageLength"].
func (u UnifiedConfiguration) Category(name string) map[string]any {
	prefix := name + "."
	out := make(map[string]any)
	for key, value := range u.Values {
		if field, ok := strings.CutPrefix(key, prefix); ok {
			out[field] = value
		}
	}
	return out
}
