package merge

import (
	"testing"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

func para(text string, x, y, w, h float64) model.Element {
	return model.New(model.TypeParagraph, geom.NewBox(x, y, w, h), text, 0.9, 1)
}

func TestApplyMergesVerticallyCloseParagraphs(t *testing.T) {
	a := para("This is the first line", 0.1, 0.80, 0.4, 0.02)
	b := para("and this continues it", 0.1, 0.789, 0.4, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 1 {
		t.Fatalf("Apply() produced %d elements, want 1", len(out))
	}
	if out[0].Text != "This is the first line and this continues it" {
		t.Errorf("Apply()[0].Text = %q", out[0].Text)
	}
}

func TestApplyStopsAtTerminalPunctuation(t *testing.T) {
	a := para("This sentence ends here.", 0.1, 0.80, 0.4, 0.02)
	b := para("A new sentence begins.", 0.1, 0.789, 0.4, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 2 {
		t.Fatalf("Apply() produced %d elements, want 2", len(out))
	}
}

func TestApplyRejectsWhenGapTooLarge(t *testing.T) {
	a := para("top of the page", 0.1, 0.95, 0.4, 0.02)
	b := para("far down the page", 0.1, 0.10, 0.4, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 2 {
		t.Fatalf("Apply() produced %d elements, want 2", len(out))
	}
}

func TestApplyRejectsListItemContinuation(t *testing.T) {
	a := para("Intro paragraph without terminal punctuation", 0.1, 0.80, 0.4, 0.02)
	b := para("1. first list item", 0.1, 0.789, 0.4, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 2 {
		t.Fatalf("Apply() merged into a list item, produced %d elements, want 2", len(out))
	}
}

func TestApplyRejectsHeaderAsSecondOperand(t *testing.T) {
	a := para("Intro paragraph without terminal punctuation", 0.1, 0.80, 0.4, 0.02)
	b := model.New(model.TypeHeader, geom.NewBox(0.1, 0.789, 0.4, 0.02), "2 Next Section", 0.9, 1)
	b.HeaderLevel = 1

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 2 {
		t.Fatalf("Apply() merged a header, produced %d elements, want 2", len(out))
	}
}

func TestApplyContinuationCommaAllowsMerge(t *testing.T) {
	a := para("items include apples,", 0.1, 0.80, 0.4, 0.02)
	b := para("oranges, and pears", 0.1, 0.789, 0.4, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 1 {
		t.Fatalf("Apply() with trailing comma produced %d elements, want 1", len(out))
	}
}

func TestApplySideBySideWithinThreshold(t *testing.T) {
	a := para("left column text", 0.05, 0.80, 0.35, 0.02)
	b := para("right column text", 0.42, 0.80, 0.35, 0.02)

	out := Apply([]model.Element{a, b}, "en")
	if len(out) != 1 {
		t.Fatalf("Apply() side-by-side produced %d elements, want 1", len(out))
	}
}
