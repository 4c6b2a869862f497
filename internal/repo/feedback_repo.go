// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a feedback item is not found, functions return
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateFeedback inserts a new Feedback row authored by the given identity
// snapshot. The id is a randomly generated UUID, status starts as "new",
// and CreatedAt is set to UTC.
//
// On success, it returns the persisted Feedback. On failure, it returns a
// DB error.
func CreateFeedback(ctx context.Context, db *gorm.DB, userID, userEmail, userName, page string, section *string, content string) (*domain.Feedback, error) {
	f := &domain.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: userEmail,
		UserName:  userName,
		Page:      page,
		Section:   section,
		Content:   content,
		Status:    domain.StatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeedback fetches a single feedback item by id with its responses
// preloaded. Returns ErrNotFound when the row does not exist.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var f domain.Feedback
	err := db.WithContext(ctx).
		Preload("Responses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at asc")
		}).
		Where("id = ?", id).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFeedback returns feedback items ordered by creation time descending
// (most recent first), capped at limit, each with its full set of responses
// preloaded. The responses per item are not capped.
func ListFeedback(ctx context.Context, db *gorm.DB, limit int) ([]domain.Feedback, error) {
	var out []domain.Feedback
	err := db.WithContext(ctx).
		Preload("Responses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at asc")
		}).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountFeedback returns the total number of feedback rows.
func CountFeedback(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Count(&total).Error
	return total, err
}

// UpdateFeedbackStatus performs a targeted update of the status column (and
// the update timestamp) for the given feedback id. If no rows are affected
// (item missing), it returns ErrNotFound. On DB error, the raw error is
// returned.
//
// Status validity is enforced at the service layer and by the DB check
// constraint.
func UpdateFeedbackStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
