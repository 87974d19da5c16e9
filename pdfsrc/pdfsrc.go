// Package pdfsrc defines the PDF collaborator (§6): page counting,
// embedded-text extraction, and page rasterization for documents that are
// not already flat images. PageCount is grounded in jackzampolin-shelf's use
// of github.com/pdfcpu/pdfcpu's api.PageCount; embedded-text extraction and
// rasterization are grounded in ivanvanderbyl-pdfmarkdown/converter.go's
// pdfium request/response pattern.
package pdfsrc

import (
	"context"
	"errors"
)

// ErrPageOutOfRange is returned by a Source when asked for a page index
// outside [0, PageCount).
var ErrPageOutOfRange = errors.New("pdfsrc: page index out of range")

// Page is a single rasterized page, ready for the OCR collaborator, plus
// whatever embedded text the PDF already carries for that page (possibly
// empty for scanned documents).
type Page struct {
	Image         []byte // PNG-encoded page raster
	Width, Height int    // pixel dimensions of Image
	EmbeddedText  string
}

// Source is the PDF collaborator: it turns a PDF document into per-page
// rasters and embedded text. Implementations must honor ctx cancellation,
// since page rendering and embedded-text extraction are suspension points
// (§5).
type Source interface {
	PageCount(ctx context.Context) (int, error)
	RenderPage(ctx context.Context, pageIndex int, dpi int) (Page, error)
	ExtractEmbeddedText(ctx context.Context, pageIndex int) (string, error)
}
