// Package services – FeedbackService
//
// This file implements the FeedbackService, which governs the feedback
// lifecycle: partners submit feedback about a page, anyone signed in may
// reply or move an item through the status workflow, and the dashboard
// lists the newest items with their replies. Service-level errors
// (e.g. ErrEmptyPage, ErrEmptyContent, ErrInvalidStatus,
// ErrFeedbackNotFound) are returned for predictable cases so handlers can
// map them to HTTP results consistently.
//
// After each successful write the relevant counter is recomputed through
// the MetricsService; a failure there is logged and swallowed so the
// primary write never fails or rolls back because of metrics.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/identity"
	"github.com/tbourn/go-partner-backend/internal/repo"
)

// DefaultListLimit caps how many feedback items a single list call returns.
const DefaultListLimit = 50

// FeedbackService implements the use-cases around partner feedback.
// Authentication is enforced at the transport layer; every method here
// assumes a verified principal. The service is context-aware and safe for
// concurrent use.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
	// Metrics recomputes counters after successful writes. Optional; when
	// nil the recompute step is skipped entirely.
	Metrics *MetricsService
	// ListLimit caps list results; values < 1 fall back to DefaultListLimit.
	ListLimit int
}

// Create inserts a new feedback item authored by p with status "new".
//
// Validation:
//   - page must be non-empty after trimming; otherwise ErrEmptyPage.
//   - content must be non-empty after trimming; otherwise ErrEmptyContent.
//   - section is optional and stored as NULL when blank.
//
// The author's display name is derived once, at creation time, via
// identity.DisplayName. On success the feedback_items counter is recomputed;
// a metrics failure is logged and does not affect the returned item.
func (s *FeedbackService) Create(ctx context.Context, p *identity.Principal, page, section, content string) (*domain.Feedback, error) {
	page = strings.TrimSpace(page)
	content = strings.TrimSpace(content)
	if page == "" {
		return nil, ErrEmptyPage
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	var sec *string
	if t := strings.TrimSpace(section); t != "" {
		sec = &t
	}

	f, err := repo.CreateFeedback(ctx, s.DB,
		p.ID, identity.EmailOrDefault(p), identity.DisplayName(p),
		page, sec, content)
	if err != nil {
		return nil, err
	}

	if s.Metrics != nil {
		if merr := s.Metrics.RecomputeFeedbackItems(ctx); merr != nil {
			log.Warn().Err(merr).Str("metric", MetricFeedbackItems).Msg("metrics recompute failed")
		}
	}
	return f, nil
}

// Respond inserts a reply to feedbackID authored by p.
//
// The parent's existence is not checked here; the storage layer's foreign
// key rejects orphaned replies and the raw DB error is propagated. On
// success the global feedback_responses counter is recomputed (logged and
// swallowed on failure).
func (s *FeedbackService) Respond(ctx context.Context, p *identity.Principal, feedbackID, content string) (*domain.FeedbackResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	r, err := repo.CreateResponse(ctx, s.DB,
		feedbackID, p.ID, identity.EmailOrDefault(p), identity.DisplayName(p), content)
	if err != nil {
		return nil, err
	}

	if s.Metrics != nil {
		if merr := s.Metrics.RecomputeFeedbackResponses(ctx); merr != nil {
			log.Warn().Err(merr).Str("metric", MetricFeedbackResponses).Msg("metrics recompute failed")
		}
	}
	return r, nil
}

// UpdateStatus moves a feedback item to a new workflow status and returns
// the refreshed record. Any authenticated principal may update any item;
// there is no per-item ownership check.
//
// Errors:
//   - ErrInvalidStatus when status is outside the four-value enum (the
//     stored row is left untouched).
//   - ErrFeedbackNotFound when no row matches feedbackID.
func (s *FeedbackService) UpdateStatus(ctx context.Context, feedbackID, status string) (*domain.Feedback, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := repo.UpdateFeedbackStatus(ctx, s.DB, feedbackID, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	f, err := repo.GetFeedback(ctx, s.DB, feedbackID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

// List returns a point-in-time snapshot of feedback items ordered by
// creation time descending, each with its full set of responses. The result
// is capped at min(limit, ListLimit); limit < 1 means "the cap". There is
// no pagination cursor — a fresh call re-derives a fresh snapshot.
func (s *FeedbackService) List(ctx context.Context, limit int) ([]domain.Feedback, error) {
	cap := s.ListLimit
	if cap < 1 {
		cap = DefaultListLimit
	}
	if limit < 1 || limit > cap {
		limit = cap
	}
	return repo.ListFeedback(ctx, s.DB, limit)
}
