// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Download
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
)

// CreateDownload inserts a download event row. userID and userEmail are nil
// for anonymous requests; ipAddress and userAgent carry "unknown" defaults
// applied by the service layer. CreatedAt is set to UTC.
//
// On success, it returns the persisted Download. On failure, it returns a
// DB error.
func CreateDownload(ctx context.Context, db *gorm.DB, userID, userEmail *string, typ, ipAddress, userAgent string) (*domain.Download, error) {
	d := &domain.Download{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserEmail: userEmail,
		Type:      typ,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// CountDownloadsByType returns the total number of download rows for a given
// type. Used by the metrics recomputation after each tracked download.
func CountDownloadsByType(ctx context.Context, db *gorm.DB, typ string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Download{}).
		Where("type = ?", typ).
		Count(&total).Error
	return total, err
}

// CountDownloads returns the total number of download rows of any type.
func CountDownloads(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Download{}).
		Count(&total).Error
	return total, err
}
