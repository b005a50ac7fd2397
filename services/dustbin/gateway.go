package dustbin

import (
	"context"

	"github.com/piresc/smartdustbin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/smartdustbin/services/dustbin DustbinGW

// DustbinGW publishes record store events
type DustbinGW interface {
	PublishDustbinCreated(ctx context.Context, dustbin *models.Dustbin) error
	PublishFillLevelUpdated(ctx context.Context, id string, fillPercentage float64) error
	PublishReportSubmitted(ctx context.Context, report *models.IssueReport) error
}
