//go:build ocr

package ocrsrc

import (
	"context"

	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

// TesseractRecognizer wraps the Tesseract OCR engine via gosseract,
// adapted from tsawler-tabula/ocr.Client: same New/Close lifecycle, but
// recognizing at word granularity (gosseract's BoundingBoxes) rather than
// whole-page text, since the pipeline needs a (text, box, confidence)
// observation per fragment, not one string per page.
type TesseractRecognizer struct {
	client *gosseract.Client
}

// NewTesseractRecognizer creates a Tesseract-backed Recognizer. The caller
// must call Close when done to release the underlying Tesseract client.
func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{client: gosseract.NewClient()}
}

// Close releases the underlying Tesseract client.
func (r *TesseractRecognizer) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// Recognize performs OCR on image and returns one Observation per
// recognized word, with its bounding box normalized to [0,1] page
// coordinates using opts.PageWidth/PageHeight.
func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte, opts RecognizeOptions) ([]model.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Language != "" {
		if err := r.client.SetLanguage(opts.Language); err != nil {
			return nil, errors.Wrap(err, "ocrsrc: set language")
		}
	}
	if err := r.client.SetImageFromBytes(image); err != nil {
		return nil, errors.Wrap(err, "ocrsrc: set image")
	}

	boxes, err := r.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, errors.Wrap(err, "ocrsrc: recognize")
	}
	if opts.PageWidth <= 0 || opts.PageHeight <= 0 {
		return nil, errors.New("ocrsrc: RecognizeOptions.PageWidth/PageHeight must be positive")
	}

	observations := make([]model.Observation, 0, len(boxes))
	pw, ph := float64(opts.PageWidth), float64(opts.PageHeight)
	for _, b := range boxes {
		// gosseract's box is pixel-space with origin top-left; flip Y to
		// match the pipeline's bottom-left, Y-up convention.
		x := float64(b.Box.Min.X) / pw
		width := float64(b.Box.Dx()) / pw
		height := float64(b.Box.Dy()) / ph
		y := 1 - float64(b.Box.Max.Y)/ph

		observations = append(observations, model.Observation{
			Text:        b.Word,
			BoundingBox: geom.NewBox(x, y, width, height),
			Confidence:  b.Confidence / 100.0,
		})
	}
	return observations, nil
}
