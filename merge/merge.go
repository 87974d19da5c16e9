// Package merge implements the Sentence Merger (§4.6): a conservative
// within-page pass that joins adjacent text elements split across OCR
// observations or page wraps, distinct from the same-line merger in
// package detect (which runs earlier, ahead of header re-detection) and
// from model.CanMerge (the geometric merge policy this package builds on).
package merge

import (
	"strings"

	"github.com/tsawler/layoutrecon/detect"
	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

const (
	verticalGapThreshold   = 0.01
	sideBySideGapThreshold = 0.10
)

var continuationMarks = []rune{',', '，', '；'}

func endsWithContinuationMark(s string) bool {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return false
	}
	r := []rune(s)
	last := r[len(r)-1]
	for _, c := range continuationMarks {
		if last == c {
			return true
		}
	}
	return false
}

func endsWithTerminalPunctuation(s string) bool {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return false
	}
	r := []rune(s)
	last := r[len(r)-1]
	switch last {
	case '.', '。', ';', '；', '!', '！', '?', '？':
		return true
	}
	return false
}

func startsWithContinuationMark(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return false
	}
	first := []rune(s)[0]
	for _, c := range continuationMarks {
		if first == c {
			return true
		}
	}
	return false
}

// canMergeSentence reports whether B may be merged onto A under the §4.6
// rule set, given A is the earlier element in reading order.
func canMergeSentence(a, b model.Element) bool {
	if !a.Type.IsMergeable() || !b.Type.IsMergeable() {
		return false
	}
	if detect.HasListPrefix(a.Text) || detect.HasListPrefix(b.Text) {
		return false
	}
	if b.Type == model.TypeHeader {
		return false
	}

	// §4.6: ending in a comma-family continuation mark (",", "，", "；")
	// permits merging onto B unless B itself opens with one; this takes
	// precedence over the terminal-punctuation check below, since "；" is
	// both a continuation mark and (for Western-style sentence splitting)
	// a terminal one.
	if endsWithContinuationMark(a.Text) {
		if startsWithContinuationMark(b.Text) {
			return false
		}
	} else if endsWithTerminalPunctuation(a.Text) {
		return false
	}

	gap := geom.MergeDistance(a.BoundingBox, b.BoundingBox)
	verticallyClose := gap <= verticalGapThreshold
	sideBySide := geom.VerticallyAligned(a.BoundingBox, b.BoundingBox, sideBySideGapThreshold) && gap <= sideBySideGapThreshold
	if !verticallyClose && !sideBySide {
		return false
	}

	return true
}

// Apply runs the Sentence Merger over a page's already sorted, already
// header/list-classified elements, in a single left-to-right pass: each
// element is tested against the running accumulator and merged in when
// canMergeSentence holds, otherwise the accumulator is flushed.
func Apply(elements []model.Element, lang string) []model.Element {
	if len(elements) == 0 {
		return elements
	}
	out := make([]model.Element, 0, len(elements))
	current := elements[0]
	for i := 1; i < len(elements); i++ {
		next := elements[i]
		if canMergeSentence(current, next) {
			current = model.Merge(current, next, lang)
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)
	return out
}
