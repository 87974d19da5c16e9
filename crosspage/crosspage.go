// Package crosspage implements the Cross-Page Optimizer (§4.8): stitching
// a sentence split across a page boundary back into a single paragraph
// living on the earlier page, with suppression near table-of-contents
// pages and near pages that terminate naturally.
package crosspage

import (
	"strings"

	"github.com/tsawler/layoutrecon/detect"
	"github.com/tsawler/layoutrecon/model"
)

// naturalTerminationMinY is the y-from-bottom threshold above which the
// last committed element of the previous page is considered to end near
// the top rather than the bottom, implying the page terminated naturally
// rather than mid-sentence (§4.8).
const naturalTerminationMinY = 0.2

// suppressed reports whether cross-page optimization must be skipped
// entirely for this page pair.
func suppressed(prevPage, currPage []model.Element, prevIsTOC, currIsTOC bool) bool {
	if prevIsTOC || currIsTOC {
		return true
	}
	if len(prevPage) == 0 {
		return true
	}
	last := prevPage[len(prevPage)-1]
	return last.BoundingBox.Bottom() >= naturalTerminationMinY
}

// Result is the outcome of stitching a single page-pair.
type Result struct {
	PrevPage []model.Element
	CurrPage []model.Element
	Stitched bool
}

// Optimize inspects the tail of prevPage and the head of currPage and, if
// the suppression conditions do not fire and both ends qualify (mergeable
// paragraphs, tail lacking terminal punctuation, head not a list item or a
// header), concatenates them into a single paragraph that stays on
// prevPage, removing the head element from currPage (§4.8).
func Optimize(prevPage, currPage []model.Element, lang string) Result {
	prevIsTOC := detect.IsTOCPage(prevPage)
	currIsTOC := detect.IsTOCPage(currPage)

	if suppressed(prevPage, currPage, prevIsTOC, currIsTOC) || len(currPage) == 0 {
		return Result{PrevPage: prevPage, CurrPage: currPage}
	}

	tailIdx := len(prevPage) - 1
	tail := prevPage[tailIdx]
	head := currPage[0]

	if !tail.Type.IsMergeable() || !head.Type.IsMergeable() {
		return Result{PrevPage: prevPage, CurrPage: currPage}
	}
	if endsWithTerminalPunctuation(tail.Text) {
		return Result{PrevPage: prevPage, CurrPage: currPage}
	}
	if detect.HasListPrefix(head.Text) || head.Type == model.TypeHeader {
		return Result{PrevPage: prevPage, CurrPage: currPage}
	}

	merged := model.Merge(tail, head, lang)

	newPrev := make([]model.Element, len(prevPage))
	copy(newPrev, prevPage)
	newPrev[tailIdx] = merged

	newCurr := make([]model.Element, len(currPage)-1)
	copy(newCurr, currPage[1:])

	return Result{PrevPage: newPrev, CurrPage: newCurr, Stitched: true}
}

func endsWithTerminalPunctuation(s string) bool {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return false
	}
	r := []rune(s)
	switch r[len(r)-1] {
	case '.', '。', ';', '；', '!', '！', '?', '？':
		return true
	}
	return false
}
