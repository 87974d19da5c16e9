package detect

import (
	"testing"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

func elem(typ model.ElementType, text string, x, y, w, h float64) model.Element {
	return model.New(typ, geom.NewBox(x, y, w, h), text, 0.9, 1)
}

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMatch bool
		wantLevel int
	}{
		{"simple level 1", "1 Introduction", true, 1},
		{"dotted level 4", "6.1.1.3 Access Control", true, 4},
		{"trailing period excluded", "6.1.1.3 Access Control.", false, 0},
		{"trailing ideographic period excluded", "1 标题。", false, 0},
		{"too-short title excluded", "1 Ab", false, 0},
		{"no number prefix", "Introduction", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchHeader(tt.text)
			if ok != tt.wantMatch {
				t.Fatalf("MatchHeader(%q) ok = %v, want %v", tt.text, ok, tt.wantMatch)
			}
			if ok && m.Level != tt.wantLevel {
				t.Errorf("MatchHeader(%q).Level = %d, want %d", tt.text, m.Level, tt.wantLevel)
			}
		})
	}
}

func TestIsOrphanHeaderCandidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"valid short han line", "访问控制要求说明", true},
		{"too few han runes", "AB访问", false},
		{"ends with terminal punctuation", "访问控制要求。", false},
		{"known non-header prefix", "应确保访问受限", false},
		{"too long", "访问控制要求说明访问控制要求说明访问控制要求说明访问控制要求说明访问控制要求说明访问控制要求说明访问控制要求说明", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOrphanHeaderCandidate(tt.text); got != tt.want {
				t.Errorf("IsOrphanHeaderCandidate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasListPrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"numbered dot", "1. first item", true},
		{"numbered paren", "2) second item", true},
		{"lettered paren", "a) sub item", true},
		{"full-width paren", "a） sub item", true},
		{"circled numeral", "①first", true},
		{"bullet dash", "- item", true},
		{"bullet disc", "• item", true},
		{"numbered header excluded", "1.2 Section Title", false},
		{"plain text", "just a sentence", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasListPrefix(tt.text); got != tt.want {
				t.Errorf("HasListPrefix(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyTypeIsIdempotent(t *testing.T) {
	e := elem(model.TypeParagraph, "5.1.2 Access Control", 0.1, 0.9, 0.3, 0.02)
	once := ClassifyType(e)
	twice := ClassifyType(once)
	if once.Type != model.TypeHeader || once.HeaderLevel != 3 {
		t.Fatalf("ClassifyType() = %+v, want header level 3", once)
	}
	if twice.Type != once.Type || twice.HeaderLevel != once.HeaderLevel || twice.Text != once.Text {
		t.Errorf("ClassifyType() not idempotent: %+v vs %+v", once, twice)
	}
}

func TestClassifyTypeListItem(t *testing.T) {
	e := elem(model.TypeParagraph, "1. buy milk", 0.1, 0.9, 0.3, 0.02)
	got := ClassifyType(e)
	if got.Type != model.TypeListItem {
		t.Errorf("ClassifyType().Type = %v, want %v", got.Type, model.TypeListItem)
	}
}

func TestNormalizeListItemStripsTrailerAndCollapsesWhitespace(t *testing.T) {
	e := elem(model.TypeListItem, "First   item name  .... 42", 0.1, 0.9, 0.3, 0.02)
	got := NormalizeListItem(e)
	if got.Text != "First item name" {
		t.Errorf("NormalizeListItem().Text = %q, want %q", got.Text, "First item name")
	}
}

func TestNormalizeTOCEntryIdempotent(t *testing.T) {
	in := "Chapter One ..... 12"
	once := NormalizeTOCEntry(in)
	twice := NormalizeTOCEntry(once)
	if once != "Chapter One" {
		t.Errorf("NormalizeTOCEntry(%q) = %q, want %q", in, once, "Chapter One")
	}
	if twice != once {
		t.Errorf("NormalizeTOCEntry not idempotent: %q then %q", once, twice)
	}
}

func TestIsTOCPage(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{"10 headers 1 paragraph", 10, true},
		{"too few elements", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var elements []model.Element
			for i := 0; i < tt.n; i++ {
				elements = append(elements, elem(model.TypeHeader, "1 x", 0.1, float64(i)*0.01, 0.2, 0.02))
			}
			if tt.n >= 3 {
				elements = append(elements, elem(model.TypeParagraph, "stray", 0.1, 0.99, 0.2, 0.02))
			}
			if got := IsTOCPage(elements); got != tt.want {
				t.Errorf("IsTOCPage() with %d headers = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMergeSameLineJoinsAdjacentFragments(t *testing.T) {
	prefix := elem(model.TypeParagraph, "5.1.2", 0.10, 0.90, 0.08, 0.02)
	title := elem(model.TypeParagraph, "Access Control", 0.19, 0.90, 0.20, 0.02)

	out := MergeSameLine([]model.Element{prefix, title}, "en", model.DefaultMergeConfig())
	if len(out) != 1 {
		t.Fatalf("MergeSameLine() produced %d elements, want 1", len(out))
	}
	if out[0].Text != "5.1.2 Access Control" {
		t.Errorf("MergeSameLine()[0].Text = %q, want %q", out[0].Text, "5.1.2 Access Control")
	}
}

func TestMergeSameLineJoinsCJKPrefixAndTitleIntoLevel3Header(t *testing.T) {
	prefix := elem(model.TypeParagraph, "5.1.2", 0.10, 0.90, 0.08, 0.02)
	title := elem(model.TypeParagraph, "访问控制", 0.19, 0.90, 0.20, 0.02)

	out := MergeSameLine([]model.Element{prefix, title}, "zh-Hans", model.DefaultMergeConfig())
	if len(out) != 1 {
		t.Fatalf("MergeSameLine() produced %d elements, want 1", len(out))
	}
	if out[0].Text != "5.1.2访问控制" {
		t.Errorf("MergeSameLine()[0].Text = %q, want %q", out[0].Text, "5.1.2访问控制")
	}

	got := ClassifyType(out[0])
	if got.Type != model.TypeHeader {
		t.Fatalf("ClassifyType(%q).Type = %v, want header", got.Text, got.Type)
	}
	if got.HeaderLevel != 3 {
		t.Errorf("ClassifyType(%q).HeaderLevel = %d, want 3", got.Text, got.HeaderLevel)
	}
}

func TestMergeSameLineLeavesUnrelatedElementsSeparate(t *testing.T) {
	a := elem(model.TypeParagraph, "top line", 0.1, 0.9, 0.2, 0.02)
	b := elem(model.TypeParagraph, "bottom line", 0.1, 0.2, 0.2, 0.02)

	out := MergeSameLine([]model.Element{a, b}, "en", model.DefaultMergeConfig())
	if len(out) != 2 {
		t.Fatalf("MergeSameLine() produced %d elements, want 2", len(out))
	}
}
