package utils

import (
	"math"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

// Fill bucket upper bounds, inclusive
const (
	EmptyUpperBound  = 25.0
	LowUpperBound    = 50.0
	MediumUpperBound = 75.0
)

// FillLevel describes how a bucket is presented
type FillLevel struct {
	Class  models.FillBucket `json:"class"`
	Color  string            `json:"color"`
	Status string            `json:"status"`
}

var fillLevels = map[models.FillBucket]FillLevel{
	models.FillEmpty:  {Class: models.FillEmpty, Color: "#10b981", Status: "Empty"},
	models.FillLow:    {Class: models.FillLow, Color: "#f59e0b", Status: "Low"},
	models.FillMedium: {Class: models.FillMedium, Color: "#f97316", Status: "Medium"},
	models.FillHigh:   {Class: models.FillHigh, Color: "#ef4444", Status: "High"},
}

// ClassifyFill maps a fill percentage to its bucket. Values below 0 and NaN
// land in empty, values above 100 in high.
func ClassifyFill(percentage float64) models.FillBucket {
	switch {
	case math.IsNaN(percentage) || percentage <= EmptyUpperBound:
		return models.FillEmpty
	case percentage <= LowUpperBound:
		return models.FillLow
	case percentage <= MediumUpperBound:
		return models.FillMedium
	default:
		return models.FillHigh
	}
}

// FillLevelInfo returns the presentation descriptor of a bucket
func FillLevelInfo(bucket models.FillBucket) FillLevel {
	if level, ok := fillLevels[bucket]; ok {
		return level
	}
	return fillLevels[models.FillEmpty]
}

// FillLevelFor classifies the percentage and returns its descriptor
func FillLevelFor(percentage float64) FillLevel {
	return FillLevelInfo(ClassifyFill(percentage))
}
