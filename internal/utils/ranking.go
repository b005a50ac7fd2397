package utils

import (
	"sort"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

// DistanceFrom returns the distance in kilometers from ref to the dustbin
func DistanceFrom(ref models.Location, dustbin *models.Dustbin) float64 {
	return CalculateDistance(GeoPointFromLocation(ref), GeoPointFromLocation(dustbin.Location()))
}

// AnnotateDistances sets the derived distance of every dustbin relative to ref
func AnnotateDistances(ref models.Location, dustbins []*models.Dustbin) {
	for _, d := range dustbins {
		distance := DistanceFrom(ref, d)
		d.Distance = &distance
	}
}

// RankByDistance annotates every dustbin and sorts the slice in place,
// nearest first. Ties keep their original order.
func RankByDistance(ref models.Location, dustbins []*models.Dustbin) []*models.Dustbin {
	AnnotateDistances(ref, dustbins)
	sortByDistance(dustbins)
	return dustbins
}

// WithinRadius returns the dustbins whose distance from ref is at most
// radiusKm, nearest first. The distance is computed once per record and the
// same value drives both the radius check and the ordering.
func WithinRadius(ref models.Location, dustbins []*models.Dustbin, radiusKm float64) []*models.Dustbin {
	nearby := make([]*models.Dustbin, 0, len(dustbins))
	for _, d := range dustbins {
		distance := DistanceFrom(ref, d)
		if distance <= radiusKm {
			d.Distance = &distance
			nearby = append(nearby, d)
		}
	}
	sortByDistance(nearby)
	return nearby
}

func sortByDistance(dustbins []*models.Dustbin) {
	sort.SliceStable(dustbins, func(i, j int) bool {
		return distanceOf(dustbins[i]) < distanceOf(dustbins[j])
	})
}

func distanceOf(d *models.Dustbin) float64 {
	if d.Distance == nil {
		return 0
	}
	return *d.Distance
}
