package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	nrpkg "github.com/piresc/smartdustbin/internal/pkg/newrelic"
)

// Table names
const (
	TableDustbins = "dustbins"
	TableReports  = "issue_reports"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS dustbins (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		fill_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		type TEXT NOT NULL,
		capacity TEXT NOT NULL,
		geohash TEXT NOT NULL DEFAULT '',
		last_updated TIMESTAMP NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dustbins_status ON dustbins (status)`,
	`CREATE TABLE IF NOT EXISTS issue_reports (
		id TEXT PRIMARY KEY,
		dustbin_id TEXT NOT NULL,
		issue TEXT NOT NULL,
		description TEXT NOT NULL,
		reported_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL
	)`,
}

const dustbinColumns = `id, name, address, latitude, longitude, fill_percentage,
	type, capacity, geohash, last_updated, status`

const insertDustbin = `INSERT INTO dustbins (` + dustbinColumns + `) VALUES (
	:id, :name, :address, :latitude, :longitude, :fill_percentage,
	:type, :capacity, :geohash, :last_updated, :status
)`

// SQLRepo implements dustbin.DustbinRepo on PostgreSQL or SQLite
type SQLRepo struct {
	db      *sqlx.DB
	product newrelic.DatastoreProduct
}

// NewSQLRepository creates a new SQL backed repository. The placeholder
// style follows the driver name of db.
func NewSQLRepository(db *sqlx.DB) *SQLRepo {
	product := newrelic.DatastorePostgres
	if db.DriverName() == "sqlite3" {
		product = newrelic.DatastoreSQLite
	}
	return &SQLRepo{db: db, product: product}
}

// EnsureSchema creates the tables when they do not exist
func (r *SQLRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Ping checks that the database answers
func (r *SQLRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ListActive returns every record whose status is active
func (r *SQLRepo) ListActive(ctx context.Context) ([]*models.Dustbin, error) {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "SELECT")()

	query := r.db.Rebind(`SELECT ` + dustbinColumns + ` FROM dustbins WHERE status = ?`)
	dustbins := make([]*models.Dustbin, 0)
	if err := r.db.SelectContext(ctx, &dustbins, query, models.DustbinStatusActive); err != nil {
		return nil, fmt.Errorf("failed to query dustbins: %w", err)
	}
	return dustbins, nil
}

// GetByID returns the record with the given id, whatever its status
func (r *SQLRepo) GetByID(ctx context.Context, id string) (*models.Dustbin, error) {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "SELECT")()

	query := r.db.Rebind(`SELECT ` + dustbinColumns + ` FROM dustbins WHERE id = ?`)
	var d models.Dustbin
	if err := r.db.GetContext(ctx, &d, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDustbinNotFound
		}
		return nil, fmt.Errorf("failed to get dustbin: %w", err)
	}
	return &d, nil
}

// Create inserts one record
func (r *SQLRepo) Create(ctx context.Context, dustbin *models.Dustbin) error {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "INSERT")()

	if _, err := r.db.NamedExecContext(ctx, insertDustbin, dustbin); err != nil {
		return fmt.Errorf("failed to insert dustbin: %w", err)
	}
	return nil
}

// CreateMany inserts records in a single transaction
func (r *SQLRepo) CreateMany(ctx context.Context, dustbins []*models.Dustbin) error {
	if len(dustbins) == 0 {
		return nil
	}
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "INSERT")()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range dustbins {
		if _, err := tx.NamedExecContext(ctx, insertDustbin, d); err != nil {
			return fmt.Errorf("failed to insert dustbin %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// UpdateFillLevel sets the fill percentage and the update time
func (r *SQLRepo) UpdateFillLevel(ctx context.Context, id string, fillPercentage float64, updatedAt time.Time) error {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "UPDATE")()

	query := r.db.Rebind(`UPDATE dustbins SET fill_percentage = ?, last_updated = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, fillPercentage, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update fill level: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrDustbinNotFound
	}
	return nil
}

// Count counts every record regardless of status
func (r *SQLRepo) Count(ctx context.Context) (int64, error) {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableDustbins, "SELECT")()

	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dustbins`); err != nil {
		return 0, fmt.Errorf("failed to count dustbins: %w", err)
	}
	return count, nil
}

// CreateReport inserts an issue report
func (r *SQLRepo) CreateReport(ctx context.Context, report *models.IssueReport) error {
	defer nrpkg.StartDatastoreSegment(ctx, r.product, TableReports, "INSERT")()

	query := `INSERT INTO issue_reports (id, dustbin_id, issue, description, reported_at, status)
		VALUES (:id, :dustbin_id, :issue, :description, :reported_at, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}
