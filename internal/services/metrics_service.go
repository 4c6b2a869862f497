// Package services – MetricsService
//
// This file implements the metrics aggregator. Counters are never
// incremented: after each relevant write the service recounts the backing
// table in full and upserts the result keyed by metric name, so a displayed
// counter self-heals from any missed update instead of drifting. The
// recompute step is best-effort by contract — callers log a failure and move
// on, and the primary write is never rolled back because of it.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/repo"
)

// Metric names written by this service. Names read by the dashboard but
// never written here (beta_signups, development_progress, monthly_growth,
// partner_engagement, technical_milestone_completion, user_retention_rate)
// are seeded out-of-band and default to 0 when absent.
const (
	MetricFeedbackItems     = "feedback_items"
	MetricFeedbackResponses = "feedback_responses"

	metricTypeCount = "count"
	periodTotal     = "total"
)

// DashboardMetrics is the flat structure returned to the partner dashboard:
// named counters plus the feedback status histogram.
type DashboardMetrics struct {
	WhitepaperDownloads          float64           `json:"whitepaper_downloads"`
	BetaSignups                  float64           `json:"beta_signups"`
	FeedbackItems                int64             `json:"feedback_items"`
	DevelopmentProgress          float64           `json:"development_progress"`
	MonthlyGrowth                float64           `json:"monthly_growth"`
	PartnerEngagement            float64           `json:"partner_engagement"`
	TechnicalMilestoneCompletion float64           `json:"technical_milestone_completion"`
	UserRetentionRate            float64           `json:"user_retention_rate"`
	FeedbackByStatus             repo.StatusCounts `json:"feedback_by_status"`
}

// MetricsService recomputes named counters from raw tables and assembles
// the dashboard view. It is stateless apart from the DB handle and safe for
// concurrent use; concurrent recomputes may land out of wall-clock order but
// every stored value corresponds to some valid state of the source table.
type MetricsService struct {
	// DB is the database handle used for counting and upserting.
	DB *gorm.DB
}

// RecomputeFeedbackItems recounts the feedback table and upserts the
// feedback_items counter.
func (s *MetricsService) RecomputeFeedbackItems(ctx context.Context) error {
	return s.recompute(ctx, MetricFeedbackItems, func() (int64, error) {
		return repo.CountFeedback(ctx, s.DB)
	})
}

// RecomputeFeedbackResponses recounts all response rows (across every
// feedback item — a global engagement metric) and upserts the
// feedback_responses counter.
func (s *MetricsService) RecomputeFeedbackResponses(ctx context.Context) error {
	return s.recompute(ctx, MetricFeedbackResponses, func() (int64, error) {
		return repo.CountResponses(ctx, s.DB)
	})
}

// RecomputeDownloads recounts download rows of the given type and upserts
// the "{type}_downloads" counter.
func (s *MetricsService) RecomputeDownloads(ctx context.Context, typ string) error {
	return s.recompute(ctx, typ+"_downloads", func() (int64, error) {
		return repo.CountDownloadsByType(ctx, s.DB, typ)
	})
}

// recompute runs the count query and upserts the result under metricName
// with metric_type=count, period=total. Count and upsert are two statements,
// not a transaction; see the package comment for why that is acceptable.
func (s *MetricsService) recompute(ctx context.Context, metricName string, count func() (int64, error)) error {
	n, err := count()
	if err != nil {
		return err
	}
	return repo.UpsertMetric(ctx, s.DB, metricName, float64(n), metricTypeCount, periodTotal)
}

// Dashboard reads all stored metric rows, looks up each known metric name
// defaulting to 0 when absent, takes feedback_items from a live count, and
// attaches the four-bucket status histogram.
func (s *MetricsService) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	rows, err := repo.ListMetrics(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]float64, len(rows))
	for _, m := range rows {
		// Newest-first ordering: keep the first occurrence per name.
		if _, ok := byName[m.MetricName]; !ok {
			byName[m.MetricName] = m.MetricValue
		}
	}

	feedbackTotal, err := repo.CountFeedback(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	statuses, err := repo.FeedbackStatusCounts(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		WhitepaperDownloads:          byName["whitepaper_downloads"],
		BetaSignups:                  byName["beta_signups"],
		FeedbackItems:                feedbackTotal,
		DevelopmentProgress:          byName["development_progress"],
		MonthlyGrowth:                byName["monthly_growth"],
		PartnerEngagement:            byName["partner_engagement"],
		TechnicalMilestoneCompletion: byName["technical_milestone_completion"],
		UserRetentionRate:            byName["user_retention_rate"],
		FeedbackByStatus:             statuses,
	}, nil
}
