// Package services – DownloadService
//
// This file implements download-event tracking. Identity is deliberately
// best-effort here, unlike every other service in the system: a request
// whose session cannot be resolved is recorded anonymously instead of being
// rejected. The event row is written once per attempt regardless of whether
// any later PDF generation succeeds.
package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/identity"
	"github.com/tbourn/go-partner-backend/internal/repo"
)

// unknownValue is stored when the client IP or user agent cannot be
// determined.
const unknownValue = "unknown"

// DownloadService records download events and keeps the per-type counters
// current. Safe for concurrent use.
type DownloadService struct {
	// DB is the database handle used for download persistence.
	DB *gorm.DB
	// Metrics recomputes the per-type download counter after each event.
	// Optional; when nil the recompute step is skipped.
	Metrics *MetricsService
}

// Record persists one download event.
//
//   - typ must be "whitepaper" or "technical-plan"; otherwise
//     ErrInvalidDownloadType and nothing is written.
//   - p may be nil (anonymous); when present, its id and email are attached.
//   - ipAddress and userAgent default to "unknown" when blank.
//
// On success the "{typ}_downloads" counter is recomputed; a metrics failure
// is logged and swallowed.
func (s *DownloadService) Record(ctx context.Context, p *identity.Principal, typ, ipAddress, userAgent string) (*domain.Download, error) {
	if !domain.ValidDownloadType(typ) {
		return nil, ErrInvalidDownloadType
	}

	var userID, userEmail *string
	if p != nil {
		id := p.ID
		userID = &id
		if p.Email != "" {
			email := p.Email
			userEmail = &email
		}
	}
	if ipAddress == "" {
		ipAddress = unknownValue
	}
	if userAgent == "" {
		userAgent = unknownValue
	}

	d, err := repo.CreateDownload(ctx, s.DB, userID, userEmail, typ, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	if s.Metrics != nil {
		if merr := s.Metrics.RecomputeDownloads(ctx, typ); merr != nil {
			log.Warn().Err(merr).Str("metric", typ+"_downloads").Msg("metrics recompute failed")
		}
	}
	return d, nil
}
