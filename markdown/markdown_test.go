package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

func elem(typ model.ElementType, text string) model.Element {
	return model.New(typ, geom.NewBox(0.1, 0.1, 0.2, 0.05), text, 0.9, 1)
}

func TestEmitRendersHeaderAtLevel(t *testing.T) {
	h := elem(model.TypeHeader, "Introduction")
	h.HeaderLevel = 2

	out, err := BuilderEmitter{}.Emit(context.Background(), [][]model.Element{{h}}, Options{})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !strings.Contains(string(out), "## Introduction") {
		t.Errorf("Emit() output = %q, want it to contain %q", out, "## Introduction")
	}
}

func TestEmitRendersListItem(t *testing.T) {
	item := elem(model.TypeListItem, "buy milk")

	out, err := BuilderEmitter{}.Emit(context.Background(), [][]model.Element{{item}}, Options{})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !strings.Contains(string(out), "buy milk") {
		t.Errorf("Emit() output = %q, want it to contain list item text", out)
	}
}

func TestEmitHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuilderEmitter{}.Emit(ctx, nil, Options{})
	if err == nil {
		t.Fatal("Emit() with cancelled context returned nil error")
	}
}

func TestEmitPrependsTOCWhenRequested(t *testing.T) {
	h := elem(model.TypeHeader, "Chapter One")
	h.HeaderLevel = 1

	out, err := BuilderEmitter{}.Emit(context.Background(), [][]model.Element{{h}}, Options{AddTableOfContents: true})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if strings.Count(string(out), "Chapter One") < 2 {
		t.Errorf("Emit() output = %q, want the header to appear in both TOC and body", out)
	}
}
