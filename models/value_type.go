// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValueType names the representation of a configuration value. Company
// override values are always stored as text and parsed according to their
// ValueType when a configuration is resolved.
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumber  ValueType = "number"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeJSON    ValueType = "json"
)

// IsValid reports whether t is one of the supported value types.
func (t ValueType) IsValid() bool {
	switch t {
	case ValueTypeString, ValueTypeNumber, ValueTypeBoolean, ValueTypeJSON:
		return true
	default:
		return false
	}
}

// ValueSource tells which configuration layer supplied a resolved value.
type ValueSource string

const (
	SourceDefault     ValueSource = "default"
	SourceApplication ValueSource = "application"
	SourceCompany     ValueSource = "company"
)
