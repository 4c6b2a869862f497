// Package services – PDFService
//
// This file implements the on-demand PDF export of the whitepaper page. A
// fresh headless Chrome process is launched per call, pointed at the
// internally-routed marketing page, and asked to print the rendered result;
// the process is torn down afterwards. There is no pooling: each export
// pays full startup and shutdown cost, which keeps the process model simple
// and is acceptable at this endpoint's traffic.
//
// The handler converts any failure from this service into a redirect to the
// human-viewable source page so a browser's native print-to-PDF remains
// available as a manual fallback.
package services

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper and 20mm margins, expressed in inches as Chrome's print API
// expects.
const (
	pdfPaperWidthIn  = 8.27
	pdfPaperHeightIn = 11.69
	pdfMarginIn      = 0.79
)

// Running header and footer injected into every printed page. The footer's
// pageNumber/totalPages spans are substituted by Chrome.
const (
	pdfHeaderTemplate = `<div style="font-size:10px;width:100%;text-align:center;color:#666;">
  Tradewise &mdash; Financial Literacy Platform
</div>`
	pdfFooterTemplate = `<div style="font-size:10px;width:100%;text-align:center;color:#666;margin:10px;">
  <span class="pageNumber"></span> / <span class="totalPages"></span>
</div>`
)

// PDFService renders the whitepaper route to a paginated PDF document via
// headless Chrome. Safe for concurrent use; each call owns its own browser.
type PDFService struct {
	// BaseURL is the externally reachable origin serving the marketing
	// pages, without a trailing slash.
	BaseURL string
	// SourcePath is the route of the print-friendly whitepaper page.
	SourcePath string
	// ChromePath optionally overrides the Chrome executable, needed on
	// hosting environments that ship their own binary.
	ChromePath string
	// Timeout bounds navigation plus render; zero falls back to 30s.
	Timeout time.Duration
}

// SourceURL returns the absolute URL of the human-viewable whitepaper page,
// used both as the render target and as the fallback redirect location.
func (s *PDFService) SourceURL() string {
	return s.BaseURL + s.SourcePath
}

// ExportWhitepaper launches an isolated headless Chrome, navigates it to the
// whitepaper page, waits for the document to settle (bounded by Timeout),
// and prints it to an A4 PDF with fixed margins and a running header/footer.
// The browser is always torn down before returning.
//
// OS-level sandboxing is explicitly disabled: container hosts typically
// lack the privileges Chrome's sandbox requires.
func (s *PDFService) ExportWhitepaper(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-accelerated-2d-canvas", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-zygote", true),
		chromedp.Flag("single-process", true),
		chromedp.DisableGPU,
	)
	if s.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(s.SourceURL()),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pdfPaperWidthIn).
				WithPaperHeight(pdfPaperHeightIn).
				WithMarginTop(pdfMarginIn).
				WithMarginBottom(pdfMarginIn).
				WithMarginLeft(pdfMarginIn).
				WithMarginRight(pdfMarginIn).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(pdfHeaderTemplate).
				WithFooterTemplate(pdfFooterTemplate).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
