// Package ocrsrc defines the OCR collaborator (§6): the abstract capability
// the Pipeline Driver suspends on to turn a page image into positioned text
// observations. Recognizer is the seam; TesseractRecognizer is the real
// adapter and StubRecognizer its build-tag-gated placeholder, both directly
// adapted from tsawler-tabula/ocr's Client/stub split.
package ocrsrc

import (
	"context"

	"github.com/tsawler/layoutrecon/model"
)

// RecognizeOptions configures a single recognition call.
type RecognizeOptions struct {
	// Language is the Tesseract language code, e.g. "eng", "chi_sim",
	// "chi_tra". Multiple languages may be joined with "+".
	Language string

	// PageWidth and PageHeight are the pixel dimensions of the source
	// image, used to normalize Tesseract's pixel-space boxes into the
	// [0,1] page-normalized coordinates the rest of the pipeline expects.
	PageWidth, PageHeight int
}

// Recognizer is the OCR collaborator: it turns a page image into a bag of
// positioned text observations. Implementations must honor ctx
// cancellation, since OCR invocation is one of the pipeline's suspension
// points (§5).
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, opts RecognizeOptions) ([]model.Observation, error)
}
