package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	nrpkg "github.com/piresc/smartdustbin/internal/pkg/newrelic"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dustbin"
)

const defaultPingTimeout = 2 * time.Second

// Validation messages returned to clients
const (
	MsgMissingFields     = "Missing required fields"
	MsgInvalidLatitude   = "Latitude must be between -90 and 90"
	MsgInvalidLongitude  = "Longitude must be between -180 and 180"
	MsgFillRequired      = "fillPercentage is required"
	MsgFillOutOfRange    = "Fill percentage must be between 0 and 100"
	MsgInvalidNearbyArgs = "Invalid coordinates or radius"
	MsgInvalidReference  = "Invalid reference coordinates"
)

// DustbinUC implements dustbin.DustbinUC
type DustbinUC struct {
	repo        dustbin.DustbinRepo
	gw          dustbin.DustbinGW
	validate    *validator.Validate
	pingTimeout time.Duration
	now         func() time.Time
}

// NewDustbinUC creates the record store use case
func NewDustbinUC(cfg *models.Config, repo dustbin.DustbinRepo, gw dustbin.DustbinGW) *DustbinUC {
	pingTimeout := defaultPingTimeout
	if cfg != nil && cfg.Store.PingTimeout > 0 {
		pingTimeout = time.Duration(cfg.Store.PingTimeout) * time.Second
	}
	return &DustbinUC{
		repo:        repo,
		gw:          gw,
		validate:    validator.New(),
		pingTimeout: pingTimeout,
		now:         models.Now,
	}
}

// ensureStore fails fast with ErrStoreUnavailable when the store does not answer
func (uc *DustbinUC) ensureStore(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, uc.pingTimeout)
	defer cancel()

	if err := uc.repo.Ping(pingCtx); err != nil {
		logger.WarnCtx(ctx, "Record store unreachable", logger.Err(err))
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return nil
}

// ListDustbins returns every active record, ranked by distance when ref is set
func (uc *DustbinUC) ListDustbins(ctx context.Context, ref *models.Location) ([]*models.Dustbin, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}
	if ref != nil && !ref.Valid() {
		return nil, models.NewValidationError(MsgInvalidReference)
	}

	dustbins, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dustbins: %w", err)
	}

	if ref != nil {
		utils.RankByDistance(*ref, dustbins)
	}
	return dustbins, nil
}

// GetDustbin returns one record by id
func (uc *DustbinUC) GetDustbin(ctx context.Context, id string) (*models.Dustbin, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}

	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrDustbinNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get dustbin: %w", err)
	}
	return d, nil
}

// CreateDustbin validates the request and stores a new active record
func (uc *DustbinUC) CreateDustbin(ctx context.Context, req *models.CreateDustbinRequest) (*models.Dustbin, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}
	if err := uc.validateCreate(req); err != nil {
		return nil, err
	}

	d := &models.Dustbin{
		ID:             "dustbin_" + uuid.New().String(),
		Name:           req.Name,
		Address:        req.Address,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		FillPercentage: 0,
		Type:           req.Type,
		Capacity:       req.Capacity,
		LastUpdated:    uc.now(),
		Status:         models.DustbinStatusActive,
	}
	if d.Type == "" {
		d.Type = models.DefaultDustbinType
	}
	if d.Capacity == "" {
		d.Capacity = models.DefaultDustbinCapacity
	}
	d.Geohash = utils.EncodeLocation(d.Location(), utils.DefaultGeohashPrecision)

	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create dustbin: %w", err)
	}

	if err := uc.gw.PublishDustbinCreated(ctx, d); err != nil {
		logger.WarnCtx(ctx, "Failed to publish dustbin created event",
			logger.String("dustbin_id", d.ID),
			logger.Err(err))
	}

	return d, nil
}

func (uc *DustbinUC) validateCreate(req *models.CreateDustbinRequest) error {
	if req == nil {
		return models.NewValidationError(MsgMissingFields)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)

	err := uc.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return models.NewValidationError(MsgMissingFields)
	}

	// missing fields take precedence over range errors
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return models.NewValidationError(MsgMissingFields)
		}
	}
	if fieldErrs[0].Field() == "Latitude" {
		return models.NewValidationError(MsgInvalidLatitude)
	}
	return models.NewValidationError(MsgInvalidLongitude)
}

// UpdateFillLevel sets the fill percentage of a record. Concurrent updates
// are not ordered; the last write wins.
func (uc *DustbinUC) UpdateFillLevel(ctx context.Context, id string, req *models.UpdateFillLevelRequest) error {
	if err := uc.ensureStore(ctx); err != nil {
		return err
	}
	if req == nil || req.FillPercentage == nil {
		return models.NewValidationError(MsgFillRequired)
	}
	if math.IsNaN(*req.FillPercentage) || uc.validate.Struct(req) != nil {
		return models.NewValidationError(MsgFillOutOfRange)
	}

	fill := *req.FillPercentage
	if err := uc.repo.UpdateFillLevel(ctx, id, fill, uc.now()); err != nil {
		if errors.Is(err, models.ErrDustbinNotFound) {
			return err
		}
		return fmt.Errorf("failed to update fill level: %w", err)
	}

	if err := uc.gw.PublishFillLevelUpdated(ctx, id, fill); err != nil {
		logger.WarnCtx(ctx, "Failed to publish fill level event",
			logger.String("dustbin_id", id),
			logger.Err(err))
	}
	return nil
}

// FindNearby returns active records within radiusKm of ref, nearest first
func (uc *DustbinUC) FindNearby(ctx context.Context, ref models.Location, radiusKm float64) ([]*models.Dustbin, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}
	if !ref.Valid() || math.IsNaN(radiusKm) || radiusKm < 0 {
		return nil, models.NewValidationError(MsgInvalidNearbyArgs)
	}

	return nrpkg.WithSegmentAndReturn(ctx, "DustbinUC.FindNearby", func() ([]*models.Dustbin, error) {
		dustbins, err := uc.repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list dustbins: %w", err)
		}
		return utils.WithinRadius(ref, dustbins, radiusKm), nil
	})
}

// SubmitReport stores an open issue report. The dustbin id is not checked.
func (uc *DustbinUC) SubmitReport(ctx context.Context, dustbinID string, req *models.SubmitReportRequest) (*models.IssueReport, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}
	if req == nil {
		req = &models.SubmitReportRequest{}
	}

	report := &models.IssueReport{
		ID:          uuid.New().String(),
		DustbinID:   dustbinID,
		Issue:       req.Issue,
		Description: req.Description,
		ReportedAt:  uc.now(),
		Status:      models.ReportStatusOpen,
	}

	if err := uc.repo.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if err := uc.gw.PublishReportSubmitted(ctx, report); err != nil {
		logger.WarnCtx(ctx, "Failed to publish report event",
			logger.String("dustbin_id", dustbinID),
			logger.Err(err))
	}
	return report, nil
}

// GetStats aggregates the active records per fill bucket
func (uc *DustbinUC) GetStats(ctx context.Context) (*models.DustbinStats, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return nil, err
	}

	return nrpkg.WithSegmentAndReturn(ctx, "DustbinUC.GetStats", func() (*models.DustbinStats, error) {
		dustbins, err := uc.repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list dustbins: %w", err)
		}
		return computeStats(dustbins), nil
	})
}

func computeStats(dustbins []*models.Dustbin) *models.DustbinStats {
	stats := &models.DustbinStats{Total: len(dustbins)}
	if len(dustbins) == 0 {
		return stats
	}

	var sum float64
	for _, d := range dustbins {
		sum += d.FillPercentage
		switch utils.ClassifyFill(d.FillPercentage) {
		case models.FillEmpty:
			stats.Empty++
		case models.FillLow:
			stats.Low++
		case models.FillMedium:
			stats.Medium++
		case models.FillHigh:
			stats.High++
		}
	}
	stats.AverageFillLevel = sum / float64(len(dustbins))
	return stats
}
