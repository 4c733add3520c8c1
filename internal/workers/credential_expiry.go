// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
)

// CredentialExpiryWorker periodically logs active credentials that expire
// within the configured window. It only reports; nothing is changed.
type CredentialExpiryWorker struct {
	credentialRepository store.CredentialRepository

	interval time.Duration
	window   time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewCredentialExpiryWorker(credentialRepository store.CredentialRepository, cfg config.Workers, logger *logger.Logger) *CredentialExpiryWorker {
	return &CredentialExpiryWorker{
		credentialRepository: credentialRepository,
		interval:             cfg.CredentialExpiryInterval,
		window:               cfg.CredentialExpiryWindow,
		now:                  time.Now,
		logger:               logger,
	}
}

// Run reports once immediately and then on every tick until ctx is done.
func (w *CredentialExpiryWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Dur("window", w.window).Msg("credential expiry worker started")
	for {
		if _, err := w.report(ctx); err != nil {
			w.logger.Err(err).Str("func", "*CredentialExpiryWorker.Run").Msg("credential expiry report failed")
		}

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("credential expiry worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// report logs each credential expiring before now+window and returns how
// many there were.
func (w *CredentialExpiryWorker) report(ctx context.Context) (int, error) {
	now := w.now()
	expiring, err := w.credentialRepository.ListExpiring(ctx, now.Add(w.window))
	if err != nil {
		return 0, err
	}

	for _, c := range expiring {
		event := w.logger.Warn().Str("code", c.Code).Int64("credential_id", c.CredentialID)
		if c.ExpiresAt != nil {
			event = event.Time("expires_at", *c.ExpiresAt).Bool("expired", !c.ExpiresAt.After(now))
		}
		event.Msg("credential is about to expire")
	}
	return len(expiring), nil
}
