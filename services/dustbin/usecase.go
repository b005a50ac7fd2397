package dustbin

import (
	"context"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/smartdustbin/services/dustbin DustbinUC

// DustbinUC defines the record store business operations
type DustbinUC interface {
	// ListDustbins returns active records; with a reference point they carry
	// their distance and are ordered nearest first.
	ListDustbins(ctx context.Context, ref *models.Location) ([]*models.Dustbin, error)
	GetDustbin(ctx context.Context, id string) (*models.Dustbin, error)
	CreateDustbin(ctx context.Context, req *models.CreateDustbinRequest) (*models.Dustbin, error)
	UpdateFillLevel(ctx context.Context, id string, req *models.UpdateFillLevelRequest) error
	FindNearby(ctx context.Context, ref models.Location, radiusKm float64) ([]*models.Dustbin, error)
	SubmitReport(ctx context.Context, dustbinID string, req *models.SubmitReportRequest) (*models.IssueReport, error)
	GetStats(ctx context.Context) (*models.DustbinStats, error)

	// SeedSampleData inserts the sample records into an empty store
	SeedSampleData(ctx context.Context) (int, error)
}
