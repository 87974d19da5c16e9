//go:build pdf

package pdfsrc

import (
	"bytes"
	"context"
	"image/png"
	"os"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
)

// FileSource is the real Source adapter: github.com/pdfcpu/pdfcpu answers
// the page count the way jackzampolin-shelf's common.LoadPDFsFromOriginals
// does, while github.com/klippa-app/go-pdfium handles embedded-text
// extraction and rasterization, adapted from
// ivanvanderbyl-pdfmarkdown/converter.go's OpenDocument/FPDF_LoadPage
// request/response calls.
type FileSource struct {
	path     string
	instance pdfium.Pdfium
}

// NewFileSource opens path with both collaborators. instance must already
// be an initialized pdfium worker pool.
func NewFileSource(path string, instance pdfium.Pdfium) *FileSource {
	return &FileSource{path: path, instance: instance}
}

func (s *FileSource) PageCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return 0, errors.Wrap(err, "pdfsrc: open file")
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, errors.Wrap(err, "pdfsrc: page count")
	}
	return n, nil
}

func (s *FileSource) ExtractEmbeddedText(ctx context.Context, pageIndex int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc, err := s.instance.OpenDocument(&requests.OpenDocument{FilePath: &s.path})
	if err != nil {
		return "", errors.Wrap(err, "pdfsrc: open document")
	}
	defer s.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})

	page, err := s.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{Document: doc.Document, Index: pageIndex})
	if err != nil {
		return "", errors.Wrap(err, "pdfsrc: load page")
	}
	defer s.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{Page: page.Page})

	text, err := s.instance.FPDF_GetText(&requests.FPDF_GetText{Page: page.Page})
	if err != nil {
		return "", errors.Wrap(err, "pdfsrc: extract text")
	}
	return text.Text, nil
}

func (s *FileSource) RenderPage(ctx context.Context, pageIndex int, dpi int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	doc, err := s.instance.OpenDocument(&requests.OpenDocument{FilePath: &s.path})
	if err != nil {
		return Page{}, errors.Wrap(err, "pdfsrc: open document")
	}
	defer s.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})

	render, err := s.instance.RenderPageInDPI(&requests.RenderPageInDPI{
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{Document: doc.Document, Index: pageIndex},
		},
		DPI: dpi,
	})
	if err != nil {
		return Page{}, errors.Wrap(err, "pdfsrc: render page")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, render.Result.Image); err != nil {
		return Page{}, errors.Wrap(err, "pdfsrc: encode page raster")
	}

	return Page{
		Image:  buf.Bytes(),
		Width:  render.Result.Image.Bounds().Dx(),
		Height: render.Result.Image.Bounds().Dy(),
	}, nil
}
