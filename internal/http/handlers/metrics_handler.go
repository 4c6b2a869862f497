package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-partner-backend/internal/services"
)

// DashboardMetricsResponse wraps the partner dashboard metrics view.
type DashboardMetricsResponse struct {
	Metrics services.DashboardMetrics `json:"metrics"`
}

// GetMetrics godoc
// @ID          getMetrics
// @Summary     Partner dashboard metrics
// @Description Returns named project counters plus a live feedback count and a feedback-by-status histogram. Unseeded counters default to zero.
// @Tags        Metrics
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} handlers.DashboardMetricsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthenticated"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /metrics [get]
func (h *Handlers) GetMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	if _, authed := principal(c); !authed {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	m, err := h.metricsSvc.Dashboard(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not load metrics")
		return
	}
	ok(c, http.StatusOK, DashboardMetricsResponse{Metrics: *m})
}
