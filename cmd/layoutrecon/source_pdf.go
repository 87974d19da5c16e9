//go:build pdf

package main

import (
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/pkg/errors"

	"github.com/tsawler/layoutrecon/pdfsrc"
)

// openPDFSource opens path with the real pdfium-backed Source when the
// module is built with -tags pdf, directly adapted from
// ivanvanderbyl-pdfmarkdown/example/main.go's webassembly.Init/GetInstance
// pool setup.
func openPDFSource(path string) (pdfsrc.Source, error) {
	pool, err := webassembly.Init(webassembly.Config{MinIdle: 1, MaxIdle: 1, MaxTotal: 1})
	if err != nil {
		return nil, errors.Wrap(err, "initializing pdfium")
	}
	instance, err := pool.GetInstance(30 * time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "getting pdfium instance")
	}
	return pdfsrc.NewFileSource(path, instance), nil
}
