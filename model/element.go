package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tsawler/layoutrecon/geom"
)

// ElementType identifies the kind of content an Element carries.
type ElementType int

const (
	TypeUnknown ElementType = iota
	TypeTitle
	TypeTextBlock
	TypeParagraph
	TypeHeader
	TypeFooter
	TypeTable
	TypeList
	TypeListItem
	TypeBarcode
	TypeImage
	TypeFootnote
	TypePageNumber
)

// String returns the lowercase camelCase name used in metadata and logs.
func (t ElementType) String() string {
	switch t {
	case TypeTitle:
		return "title"
	case TypeTextBlock:
		return "textBlock"
	case TypeParagraph:
		return "paragraph"
	case TypeHeader:
		return "header"
	case TypeFooter:
		return "footer"
	case TypeTable:
		return "table"
	case TypeList:
		return "list"
	case TypeListItem:
		return "listItem"
	case TypeBarcode:
		return "barcode"
	case TypeImage:
		return "image"
	case TypeFootnote:
		return "footnote"
	case TypePageNumber:
		return "pageNumber"
	default:
		return "unknown"
	}
}

// textBased and mergeable are table lookups per §3's type-taxonomy
// contracts, standing in for the exhaustive pattern match a tagged-variant
// model would need.
var textBased = map[ElementType]bool{
	TypeTitle:      true,
	TypeTextBlock:  true,
	TypeParagraph:  true,
	TypeHeader:     true,
	TypeFooter:     true,
	TypeListItem:   true,
	TypeFootnote:   true,
	TypePageNumber: true,
}

var mergeable = map[ElementType]bool{
	TypeTextBlock: true,
	TypeParagraph: true,
	TypeListItem:  true,
}

// IsTextBased reports whether elements of type t carry free text.
func (t ElementType) IsTextBased() bool { return textBased[t] }

// IsMergeable reports whether elements of type t may ever be combined by
// the merge policy. Headers, tables, lists, images, etc. never merge.
func (t ElementType) IsMergeable() bool { return mergeable[t] }

// Element is the typed, positioned text atom carried through every stage of
// the pipeline (§3). It is a value type: every pass produces new Elements
// rather than mutating in place, and the driver owns the evolving slice.
type Element struct {
	ID          string
	Type        ElementType
	BoundingBox geom.Box
	Confidence  float64
	PageNumber  int
	Text        string
	HeaderLevel int
	Metadata    map[string]string
	ProcessedAt time.Time
}

// New creates an Element with a fresh stable ID and a ProcessedAt timestamp.
// It does not check the §3 invariants and leaves HeaderLevel at 0; callers
// set HeaderLevel for headers and use Valid to check an Element.
func New(typ ElementType, box geom.Box, text string, confidence float64, pageNumber int) Element {
	return Element{
		ID:          uuid.NewString(),
		Type:        typ,
		BoundingBox: box,
		Confidence:  confidence,
		PageNumber:  pageNumber,
		Text:        text,
		Metadata:    map[string]string{},
		ProcessedAt: time.Now(),
	}
}

// WithMetadata returns a copy of e with key=value recorded in Metadata.
func (e Element) WithMetadata(key, value string) Element {
	meta := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	e.Metadata = meta
	return e
}

// Valid reports whether e satisfies the §3 invariants: a positive-area box
// in [0,1], and HeaderLevel set iff Type == TypeHeader.
func (e Element) Valid() bool {
	b := e.BoundingBox
	if !b.IsValid() {
		return false
	}
	if b.X < 0 || b.Y < 0 || b.Right() > 1 || b.Top() > 1 {
		return false
	}
	if (e.Type == TypeHeader) != (e.HeaderLevel >= 1) {
		return false
	}
	return true
}

// Less orders elements per the §3 commit rule: y descending, x ascending,
// using each box's min-y/min-x, with ties within 0.01 of y resolved by x.
func Less(a, b Element) bool {
	ay, by := a.BoundingBox.Bottom(), b.BoundingBox.Bottom()
	if diff := ay - by; diff > 0.01 || diff < -0.01 {
		return ay > by
	}
	return a.BoundingBox.Left() < b.BoundingBox.Left()
}
