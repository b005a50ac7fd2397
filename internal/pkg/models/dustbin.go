package models

import "time"

// DustbinStatus is the lifecycle state of a dustbin record
type DustbinStatus string

const (
	DustbinStatusActive   DustbinStatus = "active"
	DustbinStatusInactive DustbinStatus = "inactive"
)

// Defaults applied when a record is created without classification
const (
	DefaultDustbinType     = "General Waste"
	DefaultDustbinCapacity = "Standard"
)

// FillBucket is one of the four ordered fill-level classifications
type FillBucket string

const (
	FillEmpty  FillBucket = "empty"
	FillLow    FillBucket = "low"
	FillMedium FillBucket = "medium"
	FillHigh   FillBucket = "high"
)

// FillBuckets lists every bucket in ascending order
var FillBuckets = []FillBucket{FillEmpty, FillLow, FillMedium, FillHigh}

// ParseFillBucket converts a string to a FillBucket
func ParseFillBucket(s string) (FillBucket, bool) {
	for _, b := range FillBuckets {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

// Dustbin represents a tracked waste receptacle.
// Distance is derived relative to a caller-supplied reference point and is
// never persisted.
type Dustbin struct {
	ID             string        `json:"id" bson:"id" db:"id"`
	Name           string        `json:"name" bson:"name" db:"name"`
	Address        string        `json:"address" bson:"address" db:"address"`
	Latitude       float64       `json:"latitude" bson:"latitude" db:"latitude"`
	Longitude      float64       `json:"longitude" bson:"longitude" db:"longitude"`
	FillPercentage float64       `json:"fillPercentage" bson:"fillPercentage" db:"fill_percentage"`
	Type           string        `json:"type" bson:"type" db:"type"`
	Capacity       string        `json:"capacity" bson:"capacity" db:"capacity"`
	Geohash        string        `json:"geohash,omitempty" bson:"geohash,omitempty" db:"geohash"`
	LastUpdated    time.Time     `json:"lastUpdated" bson:"lastUpdated" db:"last_updated"`
	Status         DustbinStatus `json:"status" bson:"status" db:"status"`
	Distance       *float64      `json:"distance,omitempty" bson:"-" db:"-"`
}

// Location returns the dustbin coordinates as a Location
func (d *Dustbin) Location() Location {
	return Location{Latitude: d.Latitude, Longitude: d.Longitude}
}

// CreateDustbinRequest is the body of a create call. Pointers distinguish an
// absent coordinate from a zero one.
type CreateDustbinRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Type      string   `json:"type,omitempty"`
	Capacity  string   `json:"capacity,omitempty"`
}

// UpdateFillLevelRequest is the body of a fill-level update
type UpdateFillLevelRequest struct {
	FillPercentage *float64 `json:"fillPercentage" validate:"required,gte=0,lte=100"`
}

// DustbinStats aggregates active records per fill bucket
type DustbinStats struct {
	Total            int     `json:"total"`
	Empty            int     `json:"empty"`
	Low              int     `json:"low"`
	Medium           int     `json:"medium"`
	High             int     `json:"high"`
	AverageFillLevel float64 `json:"averageFillLevel"`
}
