package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dashboard"
	"github.com/sirupsen/logrus"
)

// Toast texts
const (
	MsgLocationFound     = "Location found successfully"
	MsgLocationDenied    = "Location access denied by user"
	MsgLocationMissing   = "Location information unavailable"
	MsgLocationTimeout   = "Location request timed out"
	MsgLocationFailed    = "Unable to get your location"
	MsgLoadFailed        = "Failed to load dustbins"
	MsgReportSubmitted   = "Issue reported successfully. Thank you for your feedback!"
	MsgReportFailed      = "Failed to report issue"
	MsgDistanceUnknown   = "Distance unknown"
	LocationStatusFound  = "Location found"
	LocationStatusFailed = "Location unavailable"
)

// DetailView is everything the detail panel shows for one record
type DetailView struct {
	ID             string
	Name           string
	Address        string
	DistanceText   string
	FillPercentage float64
	Fill           utils.FillLevel
	Type           string
	Capacity       string
	LastUpdated    time.Time
	DirectionsURL  string
}

// DashboardUC drives the dashboard. It is meant for a single event loop and
// is not safe for concurrent use.
type DashboardUC struct {
	state          *AppState
	gw             dashboard.DashboardGW
	locator        dashboard.Locator
	notifier       dashboard.Notifier
	log            *logrus.Logger
	LocationStatus string
}

// NewDashboardUC creates a dashboard over an empty state
func NewDashboardUC(gw dashboard.DashboardGW, locator dashboard.Locator, notifier dashboard.Notifier, log *logrus.Logger) *DashboardUC {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DashboardUC{
		state:    NewAppState(),
		gw:       gw,
		locator:  locator,
		notifier: notifier,
		log:      log,
	}
}

// State exposes the current state
func (uc *DashboardUC) State() *AppState {
	return uc.state
}

// Start locates the user, then loads the records. A failed location does
// not stop the load.
func (uc *DashboardUC) Start(ctx context.Context) error {
	_ = uc.Locate(ctx)
	return uc.Load(ctx)
}

// Locate asks the locator for the user position. On success the loaded
// records are ranked by distance from it.
func (uc *DashboardUC) Locate(ctx context.Context) error {
	position, err := uc.locator.CurrentPosition(ctx)
	if err != nil {
		uc.LocationStatus = LocationStatusFailed
		uc.log.WithError(err).Debug("geolocation failed")
		uc.notifier.Notify(dashboard.ToastError, LocationErrorMessage(err))
		return err
	}

	location := position.Location
	uc.state.UserLocation = &location
	uc.LocationStatus = LocationStatusFound
	if uc.state.Loaded {
		utils.RankByDistance(location, uc.state.Dustbins)
	}
	uc.notifier.Notify(dashboard.ToastSuccess, MsgLocationFound)
	return nil
}

// LocationErrorMessage returns the user facing reason of a geolocation failure
func LocationErrorMessage(err error) string {
	switch {
	case errors.Is(err, dashboard.ErrLocationDenied):
		return MsgLocationDenied
	case errors.Is(err, dashboard.ErrLocationUnavailable):
		return MsgLocationMissing
	case errors.Is(err, dashboard.ErrLocationTimeout):
		return MsgLocationTimeout
	default:
		return MsgLocationFailed
	}
}

// Load fetches the active records. With a known user location they are
// ranked by distance, otherwise the server order is kept. On failure the
// previous records stay in place.
func (uc *DashboardUC) Load(ctx context.Context) error {
	dustbins, err := uc.gw.ListDustbins(ctx)
	if err != nil {
		uc.log.WithError(err).Error("failed to load dustbins")
		uc.notifier.Notify(dashboard.ToastError, MsgLoadFailed)
		return err
	}

	if uc.state.UserLocation != nil {
		utils.RankByDistance(*uc.state.UserLocation, dustbins)
	}
	uc.state.Dustbins = dustbins
	uc.state.Loaded = true
	return nil
}

// Refresh reloads the records
func (uc *DashboardUC) Refresh(ctx context.Context) error {
	return uc.Load(ctx)
}

// SetSearch sets the search text
func (uc *DashboardUC) SetSearch(text string) {
	uc.state.SearchText = text
}

// ToggleBucket switches one fill bucket filter on or off
func (uc *DashboardUC) ToggleBucket(bucket models.FillBucket, on bool) {
	if on {
		uc.state.ActiveBuckets[bucket] = true
		return
	}
	delete(uc.state.ActiveBuckets, bucket)
}

// ClearBuckets turns every fill bucket filter off
func (uc *DashboardUC) ClearBuckets() {
	uc.state.ActiveBuckets = make(map[models.FillBucket]bool)
}

// Display returns the records to show
func (uc *DashboardUC) Display() []*models.Dustbin {
	return DisplaySet(uc.state)
}

// Stats fetches the fill statistics from the server
func (uc *DashboardUC) Stats(ctx context.Context) (*models.DustbinStats, error) {
	return uc.gw.GetStats(ctx)
}

// Select marks a loaded record as selected and returns its detail view
func (uc *DashboardUC) Select(id string) (*DetailView, error) {
	for _, d := range uc.state.Dustbins {
		if d.ID == id {
			uc.state.Selected = d
			return uc.detailView(d), nil
		}
	}
	return nil, models.ErrDustbinNotFound
}

func (uc *DashboardUC) detailView(d *models.Dustbin) *DetailView {
	view := &DetailView{
		ID:             d.ID,
		Name:           d.Name,
		Address:        d.Address,
		DistanceText:   MsgDistanceUnknown,
		FillPercentage: d.FillPercentage,
		Fill:           utils.FillLevelFor(d.FillPercentage),
		Type:           d.Type,
		Capacity:       d.Capacity,
		LastUpdated:    d.LastUpdated,
		DirectionsURL:  uc.DirectionsURL(d),
	}
	if d.Distance != nil {
		view.DistanceText = fmt.Sprintf("%.1f km away", *d.Distance)
	}
	if view.Type == "" {
		view.Type = models.DefaultDustbinType
	}
	if view.Capacity == "" {
		view.Capacity = models.DefaultDustbinCapacity
	}
	return view
}

// DirectionsURL links to turn-by-turn directions to d, starting from the
// user location when known
func (uc *DashboardUC) DirectionsURL(d *models.Dustbin) string {
	if loc := uc.state.UserLocation; loc != nil {
		return fmt.Sprintf("https://www.google.com/maps/dir/%v,%v/%v,%v",
			loc.Latitude, loc.Longitude, d.Latitude, d.Longitude)
	}
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", d.Latitude, d.Longitude)
}

// ReportIssue submits an issue report for a record
func (uc *DashboardUC) ReportIssue(ctx context.Context, dustbinID, issue, description string) error {
	err := uc.gw.SubmitReport(ctx, dustbinID, &models.SubmitReportRequest{
		Issue:       issue,
		Description: description,
	})
	if err != nil {
		uc.log.WithError(err).WithField("dustbin_id", dustbinID).Error("failed to submit report")
		uc.notifier.Notify(dashboard.ToastError, MsgReportFailed)
		return err
	}

	uc.notifier.Notify(dashboard.ToastSuccess, MsgReportSubmitted)
	return nil
}
