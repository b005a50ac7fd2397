package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/smartdustbin/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by every distance computation
const EarthRadiusKm = 6371.0

// DefaultGeohashPrecision is the precision stored on dustbin records
const DefaultGeohashPrecision uint = 9

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula.
func CalculateDistance(point1, point2 GeoPoint) float64 {
	dLat := toRadians(point2.Latitude - point1.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(point1.Latitude))*math.Cos(toRadians(point2.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
