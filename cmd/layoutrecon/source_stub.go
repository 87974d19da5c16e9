//go:build !pdf

package main

import (
	"fmt"

	"github.com/tsawler/layoutrecon/pdfsrc"
)

// openPDFSource always fails when the module is built without -tags pdf,
// so the CLI still builds and runs for image input without requiring the
// pdfium/WASM toolchain, mirroring the ocrsrc stub build-tag pattern.
func openPDFSource(path string) (pdfsrc.Source, error) {
	return nil, fmt.Errorf("PDF support not enabled; rebuild with -tags pdf")
}
