package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/services"
	"github.com/tbourn/go-partner-backend/internal/sysutil"
)

// TrackDownloadRequest is the JSON payload for recording a download event.
type TrackDownloadRequest struct {
	// Type identifies what was downloaded: "whitepaper" or "technical-plan".
	Type string `json:"type" binding:"required" example:"whitepaper"`
}

// DownloadTrackedResponse wraps a recorded download event.
type DownloadTrackedResponse struct {
	Success  bool            `json:"success"`
	Download domain.Download `json:"download"`
}

// clientIP resolves the caller address from proxy headers, falling back to
// "unknown". Raw header values are stored as-is; dashboards only need a
// coarse origin signal, not a validated address.
func clientIP(c *gin.Context) string {
	return sysutil.FirstNonEmpty(
		c.GetHeader("X-Forwarded-For"),
		c.GetHeader("X-Real-IP"),
		"unknown",
	)
}

// TrackDownload godoc
// @ID          trackDownload
// @Summary     Record a document download
// @Description Records a download event for analytics. Works with or without authentication; anonymous events are stored with null user fields.
// @Tags        Downloads
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.TrackDownloadRequest  true  "Download event"
//
// @Success     200  {object} handlers.DownloadTrackedResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing or invalid type"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /downloads [post]
func (h *Handlers) TrackDownload(c *gin.Context) {
	ctx := c.Request.Context()

	var req TrackDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "type is required")
		return
	}

	p, _ := principal(c) // optional; nil when anonymous
	d, err := h.dlSvc.Record(ctx, p, req.Type, clientIP(c), c.GetHeader("User-Agent"))
	if err != nil {
		switch err {
		case services.ErrInvalidDownloadType:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "type must be one of: whitepaper, technical-plan")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not record download")
		}
		return
	}

	ok(c, http.StatusOK, DownloadTrackedResponse{Success: true, Download: *d})
}
