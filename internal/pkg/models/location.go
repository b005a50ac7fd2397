package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" bson:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" bson:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" bson:"timestamp,omitempty" db:"timestamp"`
}

// Valid reports whether the location lies inside WGS84 bounds
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
