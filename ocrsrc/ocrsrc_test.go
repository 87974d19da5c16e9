package ocrsrc

import (
	"context"
	"errors"
	"testing"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

func TestFakeRecognizerReturnsScriptedPagesInOrder(t *testing.T) {
	page1 := []model.Observation{{Text: "hello", BoundingBox: geom.NewBox(0, 0, 0.1, 0.1), Confidence: 0.9}}
	page2 := []model.Observation{{Text: "world", BoundingBox: geom.NewBox(0, 0, 0.1, 0.1), Confidence: 0.9}}
	fake := &FakeRecognizer{Pages: [][]model.Observation{page1, page2}}

	got1, err := fake.Recognize(context.Background(), nil, RecognizeOptions{})
	if err != nil || len(got1) != 1 || got1[0].Text != "hello" {
		t.Fatalf("Recognize() call 1 = %+v, %v", got1, err)
	}
	got2, err := fake.Recognize(context.Background(), nil, RecognizeOptions{})
	if err != nil || len(got2) != 1 || got2[0].Text != "world" {
		t.Fatalf("Recognize() call 2 = %+v, %v", got2, err)
	}
}

func TestFakeRecognizerReturnsScriptedError(t *testing.T) {
	wantErr := errors.New("boom")
	fake := &FakeRecognizer{Err: wantErr}

	_, err := fake.Recognize(context.Background(), nil, RecognizeOptions{})
	if err != wantErr {
		t.Fatalf("Recognize() err = %v, want %v", err, wantErr)
	}
}

func TestFakeRecognizerHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &FakeRecognizer{Pages: [][]model.Observation{{}}}

	_, err := fake.Recognize(ctx, nil, RecognizeOptions{})
	if err == nil {
		t.Fatal("Recognize() with cancelled context returned nil error")
	}
}

func TestStubRecognizerAlwaysErrors(t *testing.T) {
	stub := NewStubRecognizer()
	_, err := stub.Recognize(context.Background(), nil, RecognizeOptions{})
	if err != ErrOCRNotEnabled {
		t.Fatalf("Recognize() err = %v, want %v", err, ErrOCRNotEnabled)
	}
}
