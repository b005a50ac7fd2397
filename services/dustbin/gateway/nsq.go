package gateway

import (
	"context"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/constants"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dustbin"
)

// EventPublisher publishes a JSON encoded message to a topic.
// *nsq.Producer satisfies it.
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}

type dustbinGW struct {
	publisher EventPublisher
	now       func() time.Time
}

// NewDustbinGW creates the event gateway. A nil publisher disables events.
func NewDustbinGW(publisher EventPublisher) dustbin.DustbinGW {
	if publisher == nil {
		return noopGW{}
	}
	return &dustbinGW{publisher: publisher, now: models.Now}
}

// PublishDustbinCreated publishes a dustbin.created event
func (g *dustbinGW) PublishDustbinCreated(ctx context.Context, d *models.Dustbin) error {
	fill := d.FillPercentage
	return g.publisher.Publish(constants.TopicDustbinCreated, models.DustbinEvent{
		Type:           constants.TopicDustbinCreated,
		DustbinID:      d.ID,
		FillPercentage: &fill,
		Bucket:         string(utils.ClassifyFill(fill)),
		OccurredAt:     g.now(),
	})
}

// PublishFillLevelUpdated publishes a dustbin.fill_updated event
func (g *dustbinGW) PublishFillLevelUpdated(ctx context.Context, id string, fillPercentage float64) error {
	return g.publisher.Publish(constants.TopicDustbinFillUpdated, models.DustbinEvent{
		Type:           constants.TopicDustbinFillUpdated,
		DustbinID:      id,
		FillPercentage: &fillPercentage,
		Bucket:         string(utils.ClassifyFill(fillPercentage)),
		OccurredAt:     g.now(),
	})
}

// PublishReportSubmitted publishes a dustbin.report_submitted event
func (g *dustbinGW) PublishReportSubmitted(ctx context.Context, report *models.IssueReport) error {
	return g.publisher.Publish(constants.TopicDustbinReportSubmitted, models.DustbinEvent{
		Type:       constants.TopicDustbinReportSubmitted,
		DustbinID:  report.DustbinID,
		Issue:      report.Issue,
		OccurredAt: g.now(),
	})
}

type noopGW struct{}

func (noopGW) PublishDustbinCreated(context.Context, *models.Dustbin) error { return nil }

func (noopGW) PublishFillLevelUpdated(context.Context, string, float64) error { return nil }

func (noopGW) PublishReportSubmitted(context.Context, *models.IssueReport) error { return nil }
