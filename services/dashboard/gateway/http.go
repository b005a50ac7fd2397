package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/smartdustbin/internal/pkg/http"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/pkg/retry"
	"github.com/piresc/smartdustbin/services/dashboard"
	"github.com/sirupsen/logrus"
)

type apiGW struct {
	client *httpclient.Client
}

// NewAPIGW creates a gateway to the record store API at baseURL. After a few
// consecutive server failures calls fail fast until the cool-down ends;
// reads that got no response at all are retried.
func NewAPIGW(baseURL string, timeout time.Duration, log logrus.FieldLogger) dashboard.DashboardGW {
	if log == nil {
		log = logrus.StandardLogger()
	}

	breakerConfig := circuitbreaker.DefaultConfig("dustbin-api")
	breakerConfig.IsFailure = httpclient.IsServerFailure
	breakerConfig.OnStateChange = func(name string, from, to circuitbreaker.State) {
		log.WithFields(logrus.Fields{
			"name": name,
			"from": from.String(),
			"to":   to.String(),
		}).Warn("circuit breaker state changed")
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.Retryable = httpclient.IsTransportError

	return &apiGW{
		client: httpclient.NewClient(baseURL, timeout,
			httpclient.WithCircuitBreaker(circuitbreaker.New(breakerConfig)),
			httpclient.WithGetRetry(retry.New(retryConfig)),
		),
	}
}

// ListDustbins fetches every active record
func (g *apiGW) ListDustbins(ctx context.Context) ([]*models.Dustbin, error) {
	var dustbins []*models.Dustbin
	if err := g.client.GetJSON(ctx, "/api/dustbins", &dustbins); err != nil {
		return nil, fmt.Errorf("failed to fetch dustbins: %w", err)
	}
	if dustbins == nil {
		dustbins = []*models.Dustbin{}
	}
	return dustbins, nil
}

// GetStats fetches the fill statistics
func (g *apiGW) GetStats(ctx context.Context) (*models.DustbinStats, error) {
	var stats models.DustbinStats
	if err := g.client.GetJSON(ctx, "/api/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch statistics: %w", err)
	}
	return &stats, nil
}

// SubmitReport posts an issue report for a record
func (g *apiGW) SubmitReport(ctx context.Context, dustbinID string, req *models.SubmitReportRequest) error {
	path := "/api/dustbins/" + url.PathEscape(dustbinID) + "/report"
	if err := g.client.PostJSON(ctx, path, req, nil); err != nil {
		return fmt.Errorf("failed to submit report: %w", err)
	}
	return nil
}
