package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/piresc/smartdustbin/internal/pkg/models"
)

// Store drivers selectable through store.driver
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// SQLClient represents a relational database client (PostgreSQL or SQLite)
type SQLClient struct {
	db *sqlx.DB
}

// NewPostgresClient opens a PostgreSQL pool through the pgx stdlib driver
func NewPostgresClient(config models.DatabaseConfig) (*SQLClient, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	return &SQLClient{db: db}, nil
}

// NewSQLiteClient opens (creating if needed) an SQLite database file
func NewSQLiteClient(config models.DatabaseConfig) (*SQLClient, error) {
	path := config.Path
	if path == "" {
		path = filepath.Join("data", "dustbins.db")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// sqlite serializes writers; one connection also keeps :memory: databases alive
	db.SetMaxOpenConns(1)

	return &SQLClient{db: db}, nil
}

// NewSQLClientFrom wraps an existing handle
func NewSQLClientFrom(db *sqlx.DB) *SQLClient {
	return &SQLClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *SQLClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping checks that the database answers
func (p *SQLClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database
func (p *SQLClient) Close() error {
	return p.db.Close()
}
