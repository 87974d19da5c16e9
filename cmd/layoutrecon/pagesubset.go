package main

import (
	"context"
	"fmt"

	"github.com/tsawler/layoutrecon/pdfsrc"
)

// pageSubsetSource wraps a pdfsrc.Source, restricting it to a caller-chosen
// subset of pages addressed by their original 1-indexed page numbers, and
// re-presenting them to the Driver as a contiguous 0-indexed document
// (backing the CLI's "--pages" flag, §6).
type pageSubsetSource struct {
	inner   pdfsrc.Source
	indices []int // 0-indexed positions into inner, in the order to present them
}

// newPageSubset parses spec (e.g. "1-3,5") and validates every referenced
// page number against inner's actual page count.
func newPageSubset(inner pdfsrc.Source, spec string) (pdfsrc.Source, error) {
	pages, err := parsePageRanges(spec)
	if err != nil {
		return nil, err
	}
	n, err := inner.PageCount(context.Background())
	if err != nil {
		return nil, err
	}
	indices := make([]int, len(pages))
	for i, p := range pages {
		if p < 1 || p > n {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", p, n)
		}
		indices[i] = p - 1
	}
	return &pageSubsetSource{inner: inner, indices: indices}, nil
}

func (s *pageSubsetSource) PageCount(ctx context.Context) (int, error) {
	return len(s.indices), nil
}

func (s *pageSubsetSource) RenderPage(ctx context.Context, pageIndex int, dpi int) (pdfsrc.Page, error) {
	if pageIndex < 0 || pageIndex >= len(s.indices) {
		return pdfsrc.Page{}, pdfsrc.ErrPageOutOfRange
	}
	return s.inner.RenderPage(ctx, s.indices[pageIndex], dpi)
}

func (s *pageSubsetSource) ExtractEmbeddedText(ctx context.Context, pageIndex int) (string, error) {
	if pageIndex < 0 || pageIndex >= len(s.indices) {
		return "", pdfsrc.ErrPageOutOfRange
	}
	return s.inner.ExtractEmbeddedText(ctx, s.indices[pageIndex])
}
