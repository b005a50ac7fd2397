package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_dashboard.go -package=mocks github.com/piresc/smartdustbin/services/dashboard DashboardGW,Locator

// Geolocation failures
var (
	ErrLocationDenied      = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrLocationTimeout     = errors.New("location request timed out")
)

// DashboardGW talks to the record store API
type DashboardGW interface {
	ListDustbins(ctx context.Context) ([]*models.Dustbin, error)
	GetStats(ctx context.Context) (*models.DustbinStats, error)
	SubmitReport(ctx context.Context, dustbinID string, req *models.SubmitReportRequest) error
}

// Position is a located user position and the time it was acquired
type Position struct {
	Location   models.Location
	AcquiredAt time.Time
}

// Locator provides the current user position. Implementations return one of
// the ErrLocation* errors on failure.
type Locator interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}

// ToastKind classifies a transient notification
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Notifier shows transient notifications
type Notifier interface {
	Notify(kind ToastKind, message string)
}
