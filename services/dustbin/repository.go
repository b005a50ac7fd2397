package dustbin

import (
	"context"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/smartdustbin/services/dustbin DustbinRepo

// DustbinRepo defines the data access operations of the record store
type DustbinRepo interface {
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error

	ListActive(ctx context.Context) ([]*models.Dustbin, error)
	// GetByID returns models.ErrDustbinNotFound when no record matches
	GetByID(ctx context.Context, id string) (*models.Dustbin, error)
	Create(ctx context.Context, dustbin *models.Dustbin) error
	CreateMany(ctx context.Context, dustbins []*models.Dustbin) error
	// UpdateFillLevel returns models.ErrDustbinNotFound when no record matches
	UpdateFillLevel(ctx context.Context, id string, fillPercentage float64, updatedAt time.Time) error
	// Count counts every record regardless of status
	Count(ctx context.Context) (int64, error)

	CreateReport(ctx context.Context, report *models.IssueReport) error
}
