// Package markdown implements the Markdown emitter (§6): rendering a
// committed element stream to Markdown text. The real Emitter is built on
// github.com/ivanvanderbyl/markdown's builder API, directly adapted from
// ivanvanderbyl-pdfmarkdown/markdown.go's convertParagraphToMarkdown
// switch-per-type structure, retargeted from that repo's
// Paragraph/heading-by-font-size model onto this repo's
// model.Element/HeaderLevel.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ivanvanderbyl/markdown"

	"github.com/tsawler/layoutrecon/model"
)

// Options configures a single render call.
type Options struct {
	// IncludePageBreaks adds a horizontal rule between pages.
	IncludePageBreaks bool

	// AddTableOfContents prepends a TOC built from title/header elements,
	// mirroring fileManagement.addTableOfContents.
	AddTableOfContents bool
}

// Emitter is the Markdown collaborator: it renders a committed element
// stream to Markdown bytes.
type Emitter interface {
	Emit(ctx context.Context, pages [][]model.Element, opts Options) ([]byte, error)
}

// BuilderEmitter is the real Emitter, built on github.com/ivanvanderbyl/markdown.
type BuilderEmitter struct{}

// NewBuilderEmitter returns a BuilderEmitter.
func NewBuilderEmitter() *BuilderEmitter { return &BuilderEmitter{} }

// Emit renders pages to Markdown per the §6 type table: title -> #, header
// -> #-repeated-by-level, paragraph verbatim, listItem -> "- ", table as a
// fenced code block, footer italicized, footnote as "^[...]", pageNumber as
// "**Page N**", image as a Markdown image reference, barcode as inline
// code.
func (BuilderEmitter) Emit(ctx context.Context, pages [][]model.Element, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	if opts.AddTableOfContents {
		writeTOC(md, pages)
	}

	for i, page := range pages {
		if i > 0 && opts.IncludePageBreaks {
			md.HorizontalRule().LF()
		}
		for _, e := range page {
			writeElement(md, e)
			md.LF()
		}
	}

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("markdown: build: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTOC(md *markdown.Markdown, pages [][]model.Element) {
	var any bool
	for _, page := range pages {
		for _, e := range page {
			if e.Type == model.TypeTitle || e.Type == model.TypeHeader {
				any = true
				indent := strings.Repeat("  ", e.HeaderLevel)
				md.PlainText(indent + "- " + e.Text)
			}
		}
	}
	if any {
		md.LF()
		md.HorizontalRule().LF()
	}
}

func writeElement(md *markdown.Markdown, e model.Element) {
	switch e.Type {
	case model.TypeTitle:
		md.H1(e.Text)
	case model.TypeHeader:
		switch e.HeaderLevel {
		case 1:
			md.H1(e.Text)
		case 2:
			md.H2(e.Text)
		case 3:
			md.H3(e.Text)
		case 4:
			md.H4(e.Text)
		case 5:
			md.H5(e.Text)
		default:
			md.H6(e.Text)
		}
	case model.TypeListItem:
		md.BulletList(e.Text)
	case model.TypeTable:
		md.CodeBlocks(markdown.SyntaxHighlightNone, e.Text)
	case model.TypeFooter:
		md.PlainText(markdown.Italic(e.Text))
	case model.TypeFootnote:
		md.PlainText("^[" + e.Text + "]")
	case model.TypePageNumber:
		md.PlainText(markdown.Bold("Page " + e.Text))
	case model.TypeImage:
		md.PlainText("![" + e.Text + "](" + e.Text + ")")
	case model.TypeBarcode:
		md.PlainText(markdown.Code(e.Text))
	default:
		md.PlainText(e.Text)
	}
}
