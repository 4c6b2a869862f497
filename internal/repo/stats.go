// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// by the metrics dashboard and for conditional responses (ETag generation)
// in the HTTP layer. Each function is context-aware and safe to call from
// services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

// StatusCounts is the four-bucket histogram of feedback rows by status.
type StatusCounts struct {
	New        int64 `json:"new"`
	Reviewed   int64 `json:"reviewed"`
	InProgress int64 `json:"in_progress"`
	Addressed  int64 `json:"addressed"`
}

// FeedbackStatusCounts reads the status column of every feedback row and
// builds the histogram by linear scan. Unknown values (impossible under the
// check constraint, but tolerated) are ignored.
func FeedbackStatusCounts(ctx context.Context, db *gorm.DB) (StatusCounts, error) {
	var rows []struct {
		Status string
	}
	err := db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, err
	}

	var out StatusCounts
	for _, r := range rows {
		switch r.Status {
		case domain.StatusNew:
			out.New++
		case domain.StatusReviewed:
			out.Reviewed++
		case domain.StatusInProgress:
			out.InProgress++
		case domain.StatusAddressed:
			out.Addressed++
		}
	}
	return out, nil
}

// FeedbackStats returns aggregate metadata for the feedback table: the total
// number of rows and the maximum UpdatedAt timestamp among those rows.
//
// It executes two lightweight queries. When there is no feedback, the
// returned count is 0 and maxUpdatedAt is nil.
//
// Return values:
//   - count:        total feedback rows
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func FeedbackStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Feedback{})

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
