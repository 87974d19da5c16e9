//go:build !ocr

package main

import "github.com/tsawler/layoutrecon/ocrsrc"

// newRecognizer returns StubRecognizer when the module is built without
// -tags ocr: the CLI still builds and runs, but every OCR call returns
// ocrsrc.ErrOCRNotEnabled. Image input then fails with exit code 3; for
// PDF input each page's failure is recorded as a warning and the page
// contributes no elements.
func newRecognizer() ocrsrc.Recognizer {
	return ocrsrc.NewStubRecognizer()
}
