package models

import "time"

// ReportStatus is the state of an issue report
type ReportStatus string

const (
	ReportStatusOpen ReportStatus = "open"
)

// IssueReport is a user-submitted problem report for a dustbin.
// DustbinID is not checked against existing records.
type IssueReport struct {
	ID          string       `json:"id" bson:"id" db:"id"`
	DustbinID   string       `json:"dustbinId" bson:"dustbinId" db:"dustbin_id"`
	Issue       string       `json:"issue" bson:"issue" db:"issue"`
	Description string       `json:"description" bson:"description" db:"description"`
	ReportedAt  time.Time    `json:"reportedAt" bson:"reportedAt" db:"reported_at"`
	Status      ReportStatus `json:"status" bson:"status" db:"status"`
}

// SubmitReportRequest is the body of a report submission
type SubmitReportRequest struct {
	Issue       string `json:"issue"`
	Description string `json:"description"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
