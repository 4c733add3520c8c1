package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/mock"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCredentialExpiryWorker_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := NewCredentialExpiryWorker(repo, config.Workers{CredentialExpiryInterval: time.Hour, CredentialExpiryWindow: 48 * time.Hour}, logger.Nop())
	w.now = func() time.Time { return now }

	soon := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	repo.EXPECT().ListExpiring(gomock.Any(), now.Add(48*time.Hour)).Return([]models.Credential{
		{CredentialID: 1, Code: "ACME", ExpiresAt: &past},
		{CredentialID: 2, Code: "GLOBEX", ExpiresAt: &soon},
	}, nil)

	n, err := w.report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCredentialExpiryWorker_ReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	w := NewCredentialExpiryWorker(repo, config.Workers{CredentialExpiryInterval: time.Hour}, logger.Nop())

	repo.EXPECT().ListExpiring(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := w.report(context.Background())
	assert.Error(t, err)
}

func TestCredentialExpiryWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	w := NewCredentialExpiryWorker(repo, config.Workers{CredentialExpiryInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().ListExpiring(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) ([]models.Credential, error) {
			cancel()
			return nil, nil
		})

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestCredentialExpiryWorker_DisabledReturnsImmediately(t *testing.T) {
	w := NewCredentialExpiryWorker(nil, config.Workers{}, logger.Nop())

	w.Run(context.Background())
}
