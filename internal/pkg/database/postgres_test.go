package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	client := NewSQLClientFrom(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.EqualError(t, client.Ping(context.Background()), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresClient_DoesNotDialEagerly(t *testing.T) {
	client, err := NewPostgresClient(models.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "dustbin",
		Password: "secret",
		Database: "dustbins",
		SSLMode:  "disable",
		MaxConns: 5,
	})

	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, "pgx", client.GetDB().DriverName())
	assert.Error(t, client.Ping(context.Background()))
}

func TestNewSQLiteClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dustbins.db")

	client, err := NewSQLiteClient(models.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
	assert.FileExists(t, path)
}
