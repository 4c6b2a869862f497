package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-partner-backend/internal/domain"
	"github.com/tbourn/go-partner-backend/internal/http/middleware"
)

// whitepaperFilename is the attachment name offered to the browser.
const whitepaperFilename = "Whitepaper.pdf"

// ExportWhitepaper godoc
// @ID          exportWhitepaper
// @Summary     Download the whitepaper as PDF
// @Description Renders the whitepaper page to an A4 PDF and streams it as an attachment. On any rendering failure the client is redirected to the HTML source page instead of receiving an error.
// @Tags        PDF
// @Produce     application/pdf
//
// @Success     200  {file}   file "PDF document"
// @Success     302  {string} string "Redirect to HTML fallback"
// @Router      /pdf/whitepaper [get]
func (h *Handlers) ExportWhitepaper(c *gin.Context) {
	ctx := c.Request.Context()
	lg := middleware.LoggerFrom(c)

	data, err := h.pdfSvc.ExportWhitepaper(ctx)
	if err != nil {
		// Never surface a 500 for a document download; fall back to the
		// browsable page.
		lg.Warn().Err(err).Msg("pdf export failed, redirecting to source page")
		c.Redirect(http.StatusFound, h.pdfSvc.SourceURL())
		return
	}

	// Track the download off the request path; export latency must not grow
	// and a tracking failure must not affect the served document.
	p, _ := principal(c)
	ip := clientIP(c)
	ua := c.GetHeader("User-Agent")
	go func() {
		if _, err := h.dlSvc.Record(context.Background(), p, domain.DownloadWhitepaper, ip, ua); err != nil {
			lg.Warn().Err(err).Msg("download tracking failed")
		}
	}()

	c.Header("Content-Disposition", `attachment; filename="`+whitepaperFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
