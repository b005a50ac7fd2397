package usecase

import (
	"strings"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
)

// AppState is the whole client state. Every view is derived from it.
type AppState struct {
	Dustbins      []*models.Dustbin
	UserLocation  *models.Location
	SearchText    string
	ActiveBuckets map[models.FillBucket]bool
	Selected      *models.Dustbin
	Loaded        bool
}

// NewAppState returns an empty state
func NewAppState() *AppState {
	return &AppState{ActiveBuckets: make(map[models.FillBucket]bool)}
}

// DisplaySet derives the records to show: the full set narrowed by the
// search text over name and address, then by the active fill buckets when
// any is active. Order is preserved.
func DisplaySet(state *AppState) []*models.Dustbin {
	if state == nil {
		return []*models.Dustbin{}
	}

	term := strings.ToLower(strings.TrimSpace(state.SearchText))
	filterBuckets := hasActiveBucket(state.ActiveBuckets)

	result := make([]*models.Dustbin, 0, len(state.Dustbins))
	for _, d := range state.Dustbins {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Address), term) {
			continue
		}
		if filterBuckets && !state.ActiveBuckets[utils.ClassifyFill(d.FillPercentage)] {
			continue
		}
		result = append(result, d)
	}
	return result
}

func hasActiveBucket(buckets map[models.FillBucket]bool) bool {
	for _, on := range buckets {
		if on {
			return true
		}
	}
	return false
}
