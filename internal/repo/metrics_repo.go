// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ProjectMetric model: name-keyed upserts and bulk reads for the dashboard.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

// UpsertMetric writes a metric value keyed by metricName: insert when the
// name is absent, otherwise overwrite value, type tag, period, and the
// update timestamp. The write is a point-in-time recomputation supplied by
// the caller, never an increment.
func UpsertMetric(ctx context.Context, db *gorm.DB, metricName string, value float64, metricType, period string) error {
	now := time.Now().UTC()
	m := &domain.ProjectMetric{
		ID:          uuid.NewString(),
		MetricName:  metricName,
		MetricValue: value,
		MetricType:  metricType,
		Period:      period,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "metric_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"metric_value", "metric_type", "period", "updated_at"}),
		}).
		Create(m).Error
}

// ListMetrics returns all stored metric rows, most recently updated first.
// The dashboard looks names up in the result and defaults absent ones to 0.
func ListMetrics(ctx context.Context, db *gorm.DB) ([]domain.ProjectMetric, error) {
	var out []domain.ProjectMetric
	err := db.WithContext(ctx).
		Order("updated_at desc").
		Find(&out).Error
	return out, err
}
