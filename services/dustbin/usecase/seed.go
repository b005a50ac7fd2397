package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
)

type sampleDustbin struct {
	id, name, address string
	lat, lng, fill    float64
	kind, capacity    string
}

var sampleDustbins = []sampleDustbin{
	{"dustbin_001", "Central Park Entrance", "1 Central Park West, New York, NY 10023", 40.7829, -73.9654, 25, "General Waste", "Large"},
	{"dustbin_002", "Times Square North", "1560 Broadway, New York, NY 10036", 40.7580, -73.9855, 78, "Mixed Waste", "Standard"},
	{"dustbin_003", "Brooklyn Bridge Park", "334 Furman St, Brooklyn, NY 11201", 40.7023, -73.9969, 45, "Recyclable", "Large"},
	{"dustbin_004", "High Line Park", "High Line, New York, NY 10011", 40.7480, -74.0048, 12, "General Waste", "Standard"},
	{"dustbin_005", "Washington Square Park", "Washington Square Park, New York, NY 10012", 40.7308, -73.9973, 89, "General Waste", "Standard"},
	{"dustbin_006", "Bryant Park", "1065 6th Ave, New York, NY 10018", 40.7536, -73.9832, 34, "Mixed Waste", "Large"},
	{"dustbin_007", "Madison Square Garden", "4 Pennsylvania Plaza, New York, NY 10001", 40.7505, -73.9934, 67, "General Waste", "Standard"},
	{"dustbin_008", "Union Square", "Union Square, New York, NY 10003", 40.7359, -73.9911, 15, "Recyclable", "Large"},
	{"dustbin_009", "Flatiron Building", "175 5th Ave, New York, NY 10010", 40.7411, -73.9897, 52, "General Waste", "Standard"},
	{"dustbin_010", "Chelsea Market", "75 9th Ave, New York, NY 10011", 40.7420, -74.0064, 91, "Mixed Waste", "Large"},
	{"dustbin_011", "Statue of Liberty Ferry", "Battery Park, New York, NY 10004", 40.7033, -74.0170, 28, "General Waste", "Standard"},
	{"dustbin_012", "One World Trade Center", "285 Fulton St, New York, NY 10007", 40.7127, -74.0134, 73, "General Waste", "Large"},
}

// SampleDustbins builds the sample records stamped with the current time
func (uc *DustbinUC) SampleDustbins() []*models.Dustbin {
	now := uc.now()
	dustbins := make([]*models.Dustbin, 0, len(sampleDustbins))
	for _, s := range sampleDustbins {
		d := &models.Dustbin{
			ID:             s.id,
			Name:           s.name,
			Address:        s.address,
			Latitude:       s.lat,
			Longitude:      s.lng,
			FillPercentage: s.fill,
			Type:           s.kind,
			Capacity:       s.capacity,
			LastUpdated:    now,
			Status:         models.DustbinStatusActive,
		}
		d.Geohash = utils.EncodeLocation(d.Location(), utils.DefaultGeohashPrecision)
		dustbins = append(dustbins, d)
	}
	return dustbins
}

// SeedSampleData inserts the sample records when the store holds no record
// at all. It returns the number of inserted records.
func (uc *DustbinUC) SeedSampleData(ctx context.Context) (int, error) {
	if err := uc.ensureStore(ctx); err != nil {
		return 0, err
	}

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count dustbins: %w", err)
	}
	if count > 0 {
		logger.Debug("Store already holds dustbins, skipping sample data", logger.Any("count", count))
		return 0, nil
	}

	dustbins := uc.SampleDustbins()
	if err := uc.repo.CreateMany(ctx, dustbins); err != nil {
		return 0, fmt.Errorf("failed to insert sample data: %w", err)
	}

	logger.Info("Sample dustbin data inserted", logger.Int("count", len(dustbins)))
	return len(dustbins), nil
}
