package models

import "time"

// Application is a tenant of the chat platform. It is identified externally
// by its unique Code and internally by ApplicationID.
type Application struct {
	// ApplicationID is the server-assigned primary key.
	ApplicationID int64 `json:"application_id" db:"application_id"`

	// Code is the unique, human-readable identifier used by callers.
	Code string `json:"code" db:"code"`

	// Name is a display name for administrators.
	Name string `json:"name" db:"name"`

	// Active is false for applications that were switched off. Inactive
	// applications are treated as unknown by the resolver.
	Active bool `json:"active" db:"active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterApplicationRequest is the payload of the application registration
// endpoint.
type RegisterApplicationRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegisteredApplication is returned once, right after registration. It is the
// only response that carries the plain credential secret of a new
// application.
type RegisteredApplication struct {
	Application Application `json:"application"`
	Credential  Credential  `json:"credential"`
}
