package models

import "time"

// CompanyOverride is one key/value entry that overrides a single configuration
// key for a company subscribed to an application.
//
// (CompanyID, ApplicationID, Key) is unique. Entries are never deleted: an
// empty Set deactivates the row and a later Set reactivates it.
type CompanyOverride struct {
	OverrideID    int64     `json:"override_id" db:"override_id"`
	CompanyID     string    `json:"company_id" db:"company_id"`
	ApplicationID int64     `json:"application_id" db:"application_id"`
	Key           string    `json:"key" db:"key"`
	Value         string    `json:"value" db:"value"`
	Type          ValueType `json:"type" db:"type"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Active        bool      `json:"active" db:"active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// SetCompanyOverrideRequest is the body of the override setter. An empty
// Value removes the override.
type SetCompanyOverrideRequest struct {
	Value       string    `json:"value"`
	Type        ValueType `json:"type"`
	Description *string   `json:"description,omitempty"`
}
