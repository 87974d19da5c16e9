package ocrsrc

import (
	"context"

	"github.com/tsawler/layoutrecon/model"
)

// FakeRecognizer is an in-memory Recognizer backing unit and pipeline
// tests: it returns a scripted page of observations per call, in order,
// regardless of the image bytes given.
type FakeRecognizer struct {
	Pages [][]model.Observation
	calls int

	// Err, if set, is returned instead of advancing to the next page.
	Err error
}

// Recognize returns the next scripted page of observations.
func (f *FakeRecognizer) Recognize(ctx context.Context, image []byte, opts RecognizeOptions) ([]model.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if f.calls >= len(f.Pages) {
		return nil, nil
	}
	page := f.Pages[f.calls]
	f.calls++
	return page, nil
}
