//go:build ocr

package main

import "github.com/tsawler/layoutrecon/ocrsrc"

// newRecognizer returns the real Tesseract-backed Recognizer when the
// module is built with -tags ocr (and a system Tesseract install present).
func newRecognizer() ocrsrc.Recognizer {
	return ocrsrc.NewTesseractRecognizer()
}
