// Feedback HTTP handlers.
//
// This file exposes REST endpoints for the feedback lifecycle:
//   - POST   /feedback                  (create)
//   - GET    /feedback                  (list with nested responses, ETag support)
//   - POST   /feedback/{id}/responses   (reply)
//   - PATCH  /feedback/{id}/status      (workflow status update)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
// All four endpoints require an authenticated principal, enforced by the
// RequireAuth middleware; any signed-in user may reply to or re-status any
// item.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/http/middleware"
	"github.com/tbourn/go-partner-backend/internal/identity"
	"github.com/tbourn/go-partner-backend/internal/repo"
	"github.com/tbourn/go-partner-backend/internal/services"
	"github.com/tbourn/go-partner-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// FeedbackService defines the feedback lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FeedbackService interface {
	// Create inserts a new feedback item authored by the principal.
	Create(ctx context.Context, p *identity.Principal, page, section, content string) (*domain.Feedback, error)
	// Respond inserts a reply to an existing feedback item.
	Respond(ctx context.Context, p *identity.Principal, feedbackID, content string) (*domain.FeedbackResponse, error)
	// UpdateStatus moves an item through the workflow and returns the
	// refreshed record.
	UpdateStatus(ctx context.Context, feedbackID, status string) (*domain.Feedback, error)
	// List returns the newest items with nested responses, capped.
	List(ctx context.Context, limit int) ([]domain.Feedback, error)
}

// DownloadService defines download-event tracking operations.
type DownloadService interface {
	// Record persists one download event; p is nil for anonymous requests.
	Record(ctx context.Context, p *identity.Principal, typ, ipAddress, userAgent string) (*domain.Download, error)
}

// MetricsService assembles the dashboard metrics view.
type MetricsService interface {
	// Dashboard combines named counters with the status histogram.
	Dashboard(ctx context.Context) (*services.DashboardMetrics, error)
}

// PDFService renders the whitepaper route to a PDF document.
type PDFService interface {
	// ExportWhitepaper returns the rendered document bytes.
	ExportWhitepaper(ctx context.Context) ([]byte, error)
	// SourceURL is the human-viewable page used as fallback redirect target.
	SourceURL() string
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for feedback, downloads, metrics, and PDF
// export. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	fbSvc      FeedbackService
	dlSvc      DownloadService
	metricsSvc MetricsService
	pdfSvc     PDFService

	// IdempotencyTTL is the validity window for stored idempotency records.
	// Values <= 0 fall back to defaultIdempotencyTTL.
	IdempotencyTTL time.Duration
}

// defaultIdempotencyTTL applies when no TTL is configured on Handlers.
const defaultIdempotencyTTL = 24 * time.Hour

// New constructs and returns a Handlers instance bound to the given services.
func New(fbSvc FeedbackService, dlSvc DownloadService, metricsSvc MetricsService, pdfSvc PDFService) *Handlers {
	return &Handlers{fbSvc: fbSvc, dlSvc: dlSvc, metricsSvc: metricsSvc, pdfSvc: pdfSvc}
}

// idemTTL resolves the effective idempotency record lifetime.
func (h *Handlers) idemTTL() time.Duration {
	if h.IdempotencyTTL > 0 {
		return h.IdempotencyTTL
	}
	return defaultIdempotencyTTL
}

// principal returns the authenticated principal attached by RequireAuth.
// Routes behind the middleware always have one; the guard protects direct
// handler invocations in tests.
func principal(c *gin.Context) (*identity.Principal, bool) {
	return middleware.PrincipalFrom(c)
}

//
// DTOs
//

// CreateFeedbackRequest is the JSON payload for submitting feedback.
type CreateFeedbackRequest struct {
	// Page is the route the feedback refers to.
	Page string `json:"page" binding:"required" example:"home"`
	// Section optionally names a section within the page.
	Section string `json:"section" example:"hero"`
	// Content is the feedback body.
	Content string `json:"content" binding:"required" example:"The savings chart is hard to read on mobile"`
}

// CreateFeedbackResponseRequest is the JSON payload for replying to feedback.
type CreateFeedbackResponseRequest struct {
	// Content is the reply body.
	Content string `json:"content" binding:"required" example:"Thanks, fixed in the next release"`
}

// UpdateFeedbackStatusRequest is the JSON payload for a status update.
type UpdateFeedbackStatusRequest struct {
	// Status must be one of: new, reviewed, in_progress, addressed.
	Status string `json:"status" binding:"required" example:"addressed"`
}

// FeedbackCreatedResponse wraps a newly created feedback item.
type FeedbackCreatedResponse struct {
	Success  bool            `json:"success"`
	Feedback domain.Feedback `json:"feedback"`
}

// FeedbackResponseCreatedResponse wraps a newly created reply.
type FeedbackResponseCreatedResponse struct {
	Success  bool                    `json:"success"`
	Response domain.FeedbackResponse `json:"response"`
}

// ListFeedbackResponse wraps the feedback list snapshot.
type ListFeedbackResponse struct {
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

//
// Handlers
//

// CreateFeedback godoc
// @ID          createFeedback
// @Summary     Submit feedback
// @Description Creates a feedback item for the authenticated user with status "new". Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       body             body    handlers.CreateFeedbackRequest  true  "Feedback payload"
//
// @Success     200  {object} handlers.FeedbackCreatedResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing page or content"
// @Failure     401  {object} handlers.ErrorResponse "Unauthenticated"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback [post]
func (h *Handlers) CreateFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	p, authed := principal(c)
	if !authed {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "page and content are required")
		return
	}

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	scope := middleware.IdempotencyScope(c)
	if idemKey != "" {
		if db := h.feedbackDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, p.ID, scope, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetFeedback(ctx, db, rec.RecordID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, FeedbackCreatedResponse{Success: true, Feedback: *prev})
					return
				}
			}
		}
	}

	f, err := h.fbSvc.Create(ctx, p, req.Page, req.Section, req.Content)
	if err != nil {
		switch err {
		case services.ErrEmptyPage, services.ErrEmptyContent:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "page and content are required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not store feedback")
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.feedbackDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, p.ID, scope, idemKey, f.ID, http.StatusOK, h.idemTTL())
		}
	}

	ok(c, http.StatusOK, FeedbackCreatedResponse{Success: true, Feedback: *f})
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List feedback with responses
// @Description Returns the newest feedback items (max 50) with nested responses. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Feedback
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       limit          query   int     false "Max items to return"  minimum(1) maximum(50) default(50)
//
// @Success     200  {object} handlers.ListFeedbackResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthenticated"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	if _, authed := principal(c); !authed {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	// ETag pre-check (best effort).
	if db := h.feedbackDB(); db != nil {
		count, maxTS, err := repo.FeedbackStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"feedback:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	limit := utils.AtoiDefault(c.Query("limit"), services.DefaultListLimit)
	items, err := h.fbSvc.List(ctx, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list feedback")
		return
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	ok(c, http.StatusOK, ListFeedbackResponse{Feedbacks: items})
}

// CreateFeedbackResponse godoc
// @ID          createFeedbackResponse
// @Summary     Reply to a feedback item
// @Description Creates a response attached to the given feedback item. Any authenticated user may reply to any item. Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       id               path    string  true  "Feedback ID (UUID)"  format(uuid)
// @Param       body             body    handlers.CreateFeedbackResponseRequest  true  "Reply payload"
//
// @Success     200  {object} handlers.FeedbackResponseCreatedResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing content"
// @Failure     401  {object} handlers.ErrorResponse "Unauthenticated"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback/{id}/responses [post]
func (h *Handlers) CreateFeedbackResponse(c *gin.Context) {
	ctx := c.Request.Context()
	feedbackID := c.Param("id")

	p, authed := principal(c)
	if !authed {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req CreateFeedbackResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		return
	}

	// Idempotency (replay path) – the scope is the feedback id, so one key may
	// be reused across different items.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	scope := middleware.IdempotencyScope(c)
	if idemKey != "" {
		if db := h.feedbackDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, p.ID, scope, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetResponse(ctx, db, rec.RecordID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, FeedbackResponseCreatedResponse{Success: true, Response: *prev})
					return
				}
			}
		}
	}

	r, err := h.fbSvc.Respond(ctx, p, feedbackID, req.Content)
	if err != nil {
		switch err {
		case services.ErrEmptyContent:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not store response")
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.feedbackDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, p.ID, scope, idemKey, r.ID, http.StatusOK, h.idemTTL())
		}
	}

	ok(c, http.StatusOK, FeedbackResponseCreatedResponse{Success: true, Response: *r})
}

// UpdateFeedbackStatus godoc
// @ID          updateFeedbackStatus
// @Summary     Update feedback status
// @Description Moves a feedback item to a new workflow status (new, reviewed, in_progress, addressed) and returns the refreshed item.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Feedback ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateFeedbackStatusRequest  true  "New status"
//
// @Success     200  {object} handlers.FeedbackCreatedResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid status value"
// @Failure     401  {object} handlers.ErrorResponse "Unauthenticated"
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback/{id}/status [patch]
func (h *Handlers) UpdateFeedbackStatus(c *gin.Context) {
	ctx := c.Request.Context()
	feedbackID := c.Param("id")

	if _, authed := principal(c); !authed {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	var req UpdateFeedbackStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status is required")
		return
	}

	f, err := h.fbSvc.UpdateStatus(ctx, feedbackID, req.Status)
	if err != nil {
		switch err {
		case services.ErrInvalidStatus:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be one of: new, reviewed, in_progress, addressed")
		case services.ErrFeedbackNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, "could not update feedback")
		}
		return
	}

	ok(c, http.StatusOK, FeedbackCreatedResponse{Success: true, Feedback: *f})
}

// feedbackDB exposes the underlying GORM handle when the service is the
// concrete implementation, enabling best-effort extras (ETag stats,
// idempotency bookkeeping) without widening the service interface.
func (h *Handlers) feedbackDB() *gorm.DB {
	if svc, ok := h.fbSvc.(*services.FeedbackService); ok {
		return svc.DB
	}
	return nil
}
