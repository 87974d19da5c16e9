package pdfsrc

import (
	"context"
	"errors"
	"testing"
)

func TestFakeSourcePageCount(t *testing.T) {
	f := &FakeSource{Pages: []Page{{EmbeddedText: "a"}, {EmbeddedText: "b"}}}
	n, err := f.PageCount(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("PageCount() = %d, %v, want 2, nil", n, err)
	}
}

func TestFakeSourceRenderPageOutOfRange(t *testing.T) {
	f := &FakeSource{Pages: []Page{{}}}
	_, err := f.RenderPage(context.Background(), 5, 150)
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("RenderPage() err = %v, want %v", err, ErrPageOutOfRange)
	}
}

func TestFakeSourceExtractEmbeddedText(t *testing.T) {
	f := &FakeSource{Pages: []Page{{EmbeddedText: "hello world"}}}
	text, err := f.ExtractEmbeddedText(context.Background(), 0)
	if err != nil || text != "hello world" {
		t.Fatalf("ExtractEmbeddedText() = %q, %v", text, err)
	}
}

func TestFakeSourcePropagatesScriptedError(t *testing.T) {
	wantErr := errors.New("boom")
	f := &FakeSource{Err: wantErr}
	if _, err := f.PageCount(context.Background()); err != wantErr {
		t.Fatalf("PageCount() err = %v, want %v", err, wantErr)
	}
}
