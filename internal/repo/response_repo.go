// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// FeedbackResponse model.
//
// Error semantics:
//   - A response referencing a missing parent relies on the database
//     foreign-key constraint and is returned as a raw DB error. The service
//     layer surfaces it as a store failure.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

// CreateResponse inserts a reply to the given feedback item, authored by the
// given identity snapshot. CreatedAt is set to UTC.
//
// On success, it returns the persisted FeedbackResponse. On failure (including
// a foreign-key violation for a missing parent), it returns a DB error.
func CreateResponse(ctx context.Context, db *gorm.DB, feedbackID, userID, userEmail, userName, content string) (*domain.FeedbackResponse, error) {
	r := &domain.FeedbackResponse{
		ID:         uuid.NewString(),
		FeedbackID: feedbackID,
		UserID:     userID,
		UserEmail:  userEmail,
		UserName:   userName,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetResponse fetches a single reply by id. Used to replay the stored result
// of an idempotent create.
func GetResponse(ctx context.Context, db *gorm.DB, id string) (*domain.FeedbackResponse, error) {
	var r domain.FeedbackResponse
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountResponses returns the total number of response rows across all
// feedback items. This is a global engagement figure, deliberately not
// scoped to a single parent.
func CountResponses(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.FeedbackResponse{}).
		Count(&total).Error
	return total, err
}
