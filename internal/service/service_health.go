package service

import (
	"context"
	"errors"
)

var errNoDatabase = errors.New("database is not configured")

// Pinger is satisfied by *sql.DB and store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	pinger Pinger
}

// NewHealthService reports the service healthy while pinger answers.
func NewHealthService(pinger Pinger) HealthService {
	return &healthService{pinger: pinger}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.pinger == nil {
		return errNoDatabase
	}
	return s.pinger.PingContext(ctx)
}
