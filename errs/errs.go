// Package errs defines the error kinds the pipeline surfaces (§7) and the
// PipelineError wrapper that attaches page/stage context to them, grounded
// in bbiangul-go-reason/errors.go's sentinel-var-block style combined with
// github.com/pkg/errors for wrapping, the way ivanvanderbyl-pdfmarkdown's
// converter.go attaches context to lower-level failures.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds (§7). Compare against these with errors.Is; a
// PipelineError wraps one of them via Unwrap.
var (
	ErrDocumentNotFound        = errors.New("layoutrecon: document not found")
	ErrUnsupportedFormat       = errors.New("layoutrecon: unsupported document format")
	ErrPageOutOfRange          = errors.New("layoutrecon: page out of range")
	ErrOCRFailed               = errors.New("layoutrecon: OCR failed")
	ErrImageProcessingFailed   = errors.New("layoutrecon: image processing failed")
	ErrLanguageDetectionFailed = errors.New("layoutrecon: language detection failed")
	ErrNoElementsToProcess     = errors.New("layoutrecon: no elements to process")
	ErrInvalidElementType      = errors.New("layoutrecon: invalid element type")
)

// PipelineError attaches the failing page number and underlying sentinel
// to a lower-level error, so a caller can report "page N: kind" without the
// core needing to format strings itself (§7 "user-visible failures include
// the failing page number and the kind").
type PipelineError struct {
	Kind error
	Page int
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("page %d: %v: %v", e.Page, e.Kind, e.Err)
	}
	return fmt.Sprintf("page %d: %v", e.Page, e.Kind)
}

// Unwrap exposes both the sentinel Kind and the wrapped Err to errors.Is /
// errors.As via the two-error form.
func (e *PipelineError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Wrap builds a PipelineError for page attributing kind, wrapping cause
// with github.com/pkg/errors for a stack trace when cause is non-nil.
func Wrap(kind error, page int, cause error) *PipelineError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &PipelineError{Kind: kind, Page: page, Err: cause}
}
