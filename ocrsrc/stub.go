//go:build !ocr

package ocrsrc

import (
	"context"
	"errors"

	"github.com/tsawler/layoutrecon/model"
)

// ErrOCRNotEnabled is returned by StubRecognizer for every call. Rebuild
// with -tags ocr (and a system Tesseract install) to use TesseractRecognizer
// instead, mirroring tsawler-tabula/ocr's stub build-tag pattern exactly.
var ErrOCRNotEnabled = errors.New("ocrsrc: OCR support not enabled; rebuild with -tags ocr")

// StubRecognizer is the Recognizer used when the "ocr" build tag is absent,
// so the module compiles and its non-OCR paths stay testable without a
// system Tesseract install.
type StubRecognizer struct{}

// NewStubRecognizer returns a StubRecognizer.
func NewStubRecognizer() *StubRecognizer { return &StubRecognizer{} }

// Recognize always returns ErrOCRNotEnabled.
func (StubRecognizer) Recognize(ctx context.Context, image []byte, opts RecognizeOptions) ([]model.Observation, error) {
	return nil, ErrOCRNotEnabled
}
