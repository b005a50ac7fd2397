package models

import "time"

// DustbinEvent is published to the message broker after a successful write
type DustbinEvent struct {
	Type           string    `json:"type"`
	DustbinID      string    `json:"dustbin_id"`
	FillPercentage *float64  `json:"fill_percentage,omitempty"`
	Bucket         string    `json:"bucket,omitempty"`
	Issue          string    `json:"issue,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
