package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	svc := NewHealthService(db)
	assert.NoError(t, svc.Check(context.Background()))
	assert.Error(t, svc.Check(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthService_NoDatabase(t *testing.T) {
	assert.ErrorIs(t, NewHealthService(nil).Check(context.Background()), errNoDatabase)
}
