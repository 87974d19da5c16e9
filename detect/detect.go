// Package detect implements the Header-and-List Detector (§4.4): pattern
// classification of an Element's text into header/list-item/plain, the
// same-line merger that runs ahead of re-classification, list-item
// normalization, and page-level table-of-contents detection.
package detect

import (
	"regexp"
	"strings"

	"github.com/tsawler/layoutrecon/geom"
	"github.com/tsawler/layoutrecon/model"
)

// numberedHeaderPattern matches a dotted numeric prefix followed by a
// non-empty title, e.g. "6.1.1.3 Access Control". The title may also
// follow the prefix with no intervening whitespace when it starts with a
// Han rune (group 3): MergeSameLine joins a CJK prefix and title with no
// separator per the §4.2 CJK rule, e.g. "5.1.2访问控制", and that case must
// still be recognized as a header.
var numberedHeaderPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)(?:\s+(\S.*)|(\p{Han}.*))$`)

// listPrefixPatterns are tried in order; the numbered-header pattern always
// wins over list classification (headers win, per §4.4).
var listPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\s`),
	regexp.MustCompile(`^\d+\)\s`),
	regexp.MustCompile(`^[a-z]\)\s`),
	regexp.MustCompile(`^[a-z]）\s`),
	regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳]`),
	regexp.MustCompile(`^[•\-\*]\s`),
}

// tocTrailerPattern strips a trailing leader-dot/page-number suffix from a
// TOC entry, keeping group 1.
var tocTrailerPattern = regexp.MustCompile(`^(.*?)(?:[.·…\s]{2,}\d+)\s*$`)

// nonHeaderPrefixes are Chinese phrase openers that rule out a short Han
// line being an orphan-header candidate even though it has no terminal
// punctuation (§4.4).
var nonHeaderPrefixes = []string{"本项要求包括：", "应", "应确保", "应指定"}

var terminalPunctuation = []rune{'.', '。', ';', '；', '!', '！', '?', '？'}

func endsWithTerminalPunctuation(s string) bool {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return false
	}
	r := []rune(s)
	last := r[len(r)-1]
	for _, t := range terminalPunctuation {
		if last == t {
			return true
		}
	}
	return false
}

// HeaderMatch describes a successful numeric-prefix header match.
type HeaderMatch struct {
	Prefix string
	Title  string
	Level  int
}

// MatchHeader reports whether text qualifies as a numbered header and, if
// so, its parsed prefix/title/level.
func MatchHeader(text string) (HeaderMatch, bool) {
	text = strings.TrimSpace(text)
	if endsWithTerminalPunctuation(text) {
		return HeaderMatch{}, false
	}
	m := numberedHeaderPattern.FindStringSubmatch(text)
	if m == nil {
		return HeaderMatch{}, false
	}
	title := m[2]
	if title == "" {
		title = m[3]
	}
	if len(strings.TrimSpace(title)) < 3 {
		return HeaderMatch{}, false
	}
	return HeaderMatch{
		Prefix: m[1],
		Title:  title,
		Level:  strings.Count(m[1], ".") + 1,
	}, true
}

// countHanRunes counts CJK Unified Ideograph runes in s.
func countHanRunes(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			n++
		}
	}
	return n
}

// IsOrphanHeaderCandidate implements the Chinese short-line heuristic used
// both by header detection and by the Header Optimizer's orphan repair
// (§4.4, §4.7): 3-50 characters, at least 3 Han runes, no terminal
// punctuation, and not a known non-header phrase opener.
func IsOrphanHeaderCandidate(text string) bool {
	text = strings.TrimSpace(text)
	n := len([]rune(text))
	if n < 3 || n > 50 {
		return false
	}
	if endsWithTerminalPunctuation(text) {
		return false
	}
	if countHanRunes(text) < 3 {
		return false
	}
	for _, p := range nonHeaderPrefixes {
		if strings.HasPrefix(text, p) {
			return false
		}
	}
	return true
}

// HasListPrefix reports whether text begins with a recognized list-item
// marker. The numeric-header pattern is checked first and excludes list
// classification (headers win).
func HasListPrefix(text string) bool {
	text = strings.TrimSpace(text)
	if _, ok := MatchHeader(text); ok {
		return false
	}
	for _, p := range listPrefixPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ClassifyType re-derives an Element's Type and HeaderLevel from its text,
// applying the numbered-header rule then the list-prefix rule. Elements
// that match neither keep their existing type, except that a header is
// demoted to paragraph. Classification is
// idempotent: applying it twice yields the same result.
func ClassifyType(e model.Element) model.Element {
	if hm, ok := MatchHeader(e.Text); ok {
		e.Type = model.TypeHeader
		e.HeaderLevel = hm.Level
		return e
	}
	if e.Type == model.TypeHeader {
		// No longer matches; demote back to a default text type so the
		// HeaderLevel invariant (model.Element.Valid) keeps holding.
		e.Type = model.TypeParagraph
		e.HeaderLevel = 0
	}
	if HasListPrefix(e.Text) {
		e.Type = model.TypeListItem
	}
	return e
}

// NormalizeListItem strips a trailing page-reference suffix and collapses
// intra-item whitespace (§4.4 list-item normalization).
func NormalizeListItem(e model.Element) model.Element {
	if e.Type != model.TypeListItem {
		return e
	}
	text := tocTrailerPattern.ReplaceAllString(e.Text, "$1")
	text = strings.TrimSpace(text)
	text = strings.Join(strings.Fields(text), " ")
	e.Text = text
	return e
}

// NormalizeTOCEntry removes a trailing leader-dot/page-number reference
// from a TOC entry's text (§4.4 TOC normalization). Idempotent.
func NormalizeTOCEntry(text string) string {
	return strings.TrimRight(tocTrailerPattern.ReplaceAllString(text, "$1"), " ")
}

// IsTOCPage reports whether a page's elements qualify as a table of
// contents: at least 3 elements, and headers make up ≥90% of them (§4.4).
func IsTOCPage(elements []model.Element) bool {
	if len(elements) < 3 {
		return false
	}
	headers := 0
	for _, e := range elements {
		if e.Type == model.TypeHeader {
			headers++
		}
	}
	return float64(headers)/float64(len(elements)) >= 0.9
}

// sameLineTolerance is the vertical-alignment tolerance used by the
// same-line merger (§4.4). This is deliberately looser than the 0.02
// tolerance used inside model.CanMerge's own relation classification; the
// same-line merger operates on a coarser, page-scan pass run ahead of
// header re-detection.
const sameLineTolerance = 0.08

// MergeSameLine groups consecutive elements of a sorted sequence into
// maximal runs where each pair is vertically aligned within tolerance 0.08
// and passes model.CanMerge, collapsing each run by repeated model.Merge.
// Must run before header re-detection, since a header's numeric prefix and
// title frequently arrive as separate observations (§4.4).
func MergeSameLine(elements []model.Element, lang string, cfg model.MergeConfig) []model.Element {
	if len(elements) == 0 {
		return elements
	}
	out := make([]model.Element, 0, len(elements))
	current := elements[0]
	for i := 1; i < len(elements); i++ {
		next := elements[i]
		if geom.VerticallyAligned(current.BoundingBox, next.BoundingBox, sameLineTolerance) && model.CanMerge(current, next, cfg) {
			current = model.Merge(current, next, lang)
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)
	return out
}
