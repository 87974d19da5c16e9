package model

import (
	"testing"

	"github.com/tsawler/layoutrecon/geom"
)

func TestElementTypeIsTextBased(t *testing.T) {
	tests := []struct {
		typ  ElementType
		want bool
	}{
		{TypeTitle, true},
		{TypeTextBlock, true},
		{TypeParagraph, true},
		{TypeHeader, true},
		{TypeFooter, true},
		{TypeListItem, true},
		{TypeFootnote, true},
		{TypePageNumber, true},
		{TypeTable, false},
		{TypeList, false},
		{TypeImage, false},
		{TypeBarcode, false},
		{TypeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsTextBased(); got != tt.want {
				t.Errorf("IsTextBased() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementTypeIsMergeable(t *testing.T) {
	tests := []struct {
		typ  ElementType
		want bool
	}{
		{TypeTextBlock, true},
		{TypeParagraph, true},
		{TypeListItem, true},
		{TypeHeader, false},
		{TypeTable, false},
		{TypeList, false},
		{TypeTitle, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsMergeable(); got != tt.want {
				t.Errorf("IsMergeable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAssignsID(t *testing.T) {
	e1 := New(TypeParagraph, geom.NewBox(0, 0, 0.1, 0.1), "hello", 0.9, 1)
	e2 := New(TypeParagraph, geom.NewBox(0, 0, 0.1, 0.1), "hello", 0.9, 1)
	if e1.ID == "" {
		t.Fatal("New() left ID empty")
	}
	if e1.ID == e2.ID {
		t.Error("New() produced duplicate IDs for distinct elements")
	}
}

func TestElementValid(t *testing.T) {
	tests := []struct {
		name string
		e    Element
		want bool
	}{
		{
			name: "valid paragraph",
			e:    New(TypeParagraph, geom.NewBox(0.1, 0.1, 0.2, 0.05), "text", 0.9, 1),
			want: true,
		},
		{
			name: "valid header has level",
			e: func() Element {
				e := New(TypeHeader, geom.NewBox(0.1, 0.1, 0.2, 0.05), "1 Intro", 0.9, 1)
				e.HeaderLevel = 1
				return e
			}(),
			want: true,
		},
		{
			name: "header without level is invalid",
			e:    New(TypeHeader, geom.NewBox(0.1, 0.1, 0.2, 0.05), "1 Intro", 0.9, 1),
			want: false,
		},
		{
			name: "non-header with level is invalid",
			e: func() Element {
				e := New(TypeParagraph, geom.NewBox(0.1, 0.1, 0.2, 0.05), "text", 0.9, 1)
				e.HeaderLevel = 2
				return e
			}(),
			want: false,
		},
		{
			name: "zero-area box is invalid",
			e:    New(TypeParagraph, geom.NewBox(0.1, 0.1, 0, 0.05), "text", 0.9, 1),
			want: false,
		},
		{
			name: "out of [0,1] bounds is invalid",
			e:    New(TypeParagraph, geom.NewBox(0.95, 0.1, 0.2, 0.05), "text", 0.9, 1),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLessOrdering(t *testing.T) {
	top := New(TypeParagraph, geom.NewBox(0.1, 0.9, 0.2, 0.05), "top", 1, 1)
	bottom := New(TypeParagraph, geom.NewBox(0.1, 0.1, 0.2, 0.05), "bottom", 1, 1)
	if !Less(top, bottom) {
		t.Error("Less(top, bottom) = false, want true (higher y sorts first)")
	}
	if Less(bottom, top) {
		t.Error("Less(bottom, top) = true, want false")
	}

	left := New(TypeParagraph, geom.NewBox(0.1, 0.5, 0.2, 0.05), "left", 1, 1)
	right := New(TypeParagraph, geom.NewBox(0.5, 0.503, 0.2, 0.05), "right", 1, 1)
	if !Less(left, right) {
		t.Error("Less(left, right) = false, want true for near-equal y, left x first")
	}
}
