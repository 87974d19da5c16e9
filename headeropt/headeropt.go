// Package headeropt implements the Header Optimizer (§4.7): false-header
// demotion via a monotonic per-level prefix frontier, and orphan-content
// repair that infers a missing numeric prefix from surrounding headers.
// Both run after same-line merge and header re-detection (package detect);
// the pipeline applies FilterFalseHeaders to non-TOC pages only and
// RepairOrphans to both TOC and non-TOC pages.
package headeropt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/layoutrecon/detect"
	"github.com/tsawler/layoutrecon/model"
)

// frontier tracks, per level, the most-recently-accepted dot-separated
// prefix component seen at that level — the stack-based ancestor tracking
// pattern the teacher's HeadingLayout.GetOutline uses to nest headings,
// adapted here from "build an outline" into "validate a new header against
// open ancestors".
type frontier map[int]string

func splitPrefix(prefix string) []string {
	return strings.Split(prefix, ".")
}

// accepts reports whether prefix is a valid child or sibling of the
// frontier's open ancestors: for every level k shorter than len(parts),
// the frontier's recorded component at level k must equal parts[k] (§4.7).
// A level with nothing recorded yet places no constraint.
func (f frontier) accepts(parts []string) bool {
	for k := 0; k < len(parts)-1; k++ {
		if v, seen := f[k+1]; seen && v != parts[k] {
			return false
		}
	}
	return true
}

func (f frontier) record(parts []string) {
	for k, p := range parts {
		f[k+1] = p
	}
}

// FilterFalseHeaders demotes any header whose numeric prefix is incoherent
// with the monotonic frontier of previously accepted headers — e.g. "7.3"
// appearing between level-1 headers "2" and "3" with no level-1 "7" seen
// earlier — back to a paragraph (§4.7).
func FilterFalseHeaders(elements []model.Element) []model.Element {
	out := make([]model.Element, len(elements))
	f := frontier{}
	for i, e := range elements {
		if e.Type != model.TypeHeader {
			out[i] = e
			continue
		}
		hm, ok := detect.MatchHeader(e.Text)
		if !ok {
			out[i] = e
			continue
		}
		parts := splitPrefix(hm.Prefix)
		if !f.accepts(parts) {
			e.Type = model.TypeParagraph
			e.HeaderLevel = 0
			out[i] = e
			continue
		}
		f.record(parts)
		out[i] = e
	}
	return out
}

// numericSuffix parses the final dot-separated component of a numeric
// header prefix, and returns the prefix with that component dropped (the
// "base").
func numericSuffix(prefix string) (base string, suffix int, ok bool) {
	parts := strings.Split(prefix, ".")
	last := parts[len(parts)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return "", 0, false
	}
	return strings.Join(parts[:len(parts)-1], "."), n, true
}

func joinBase(base string, n int) string {
	if base == "" {
		return strconv.Itoa(n)
	}
	return base + "." + strconv.Itoa(n)
}

func levelOf(prefix string) int {
	return strings.Count(prefix, ".") + 1
}

// headerPrefixPattern extracts the dotted numeric prefix of an element that
// is already typed as a header. Unlike detect.MatchHeader it places no
// length requirement on the title that follows.
var headerPrefixPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)(?:\s|\p{Han})`)

func headerPrefix(text string) (string, bool) {
	m := headerPrefixPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RepairOrphans scans non-header elements that qualify as orphan-header
// candidates (detect.IsOrphanHeaderCandidate) and, for each, attempts to
// infer a missing numeric prefix from the nearest preceding and following
// headers, per §4.7's single-step-gap inference rule. A successful
// prediction retypes the element to header with the predicted prefix
// prepended to its original text.
//
// Gaps greater than 2 are deliberately left unrepaired: the spec names
// only the exactly-one-missing-sibling case, so a two-or-more gap is
// ambiguous about which intermediate numbers are missing and is left to
// a human or a later pass.
func RepairOrphans(elements []model.Element) []model.Element {
	out := make([]model.Element, len(elements))
	copy(out, elements)

	for i, e := range out {
		if e.Type == model.TypeHeader || !detect.IsOrphanHeaderCandidate(e.Text) {
			continue
		}

		prevBase, prevSuffix, havePrev := findPrecedingHeaderPrefix(out, i)
		nextBase, nextSuffix, haveNext := findFollowingHeaderPrefix(out, i)

		var predictedBase string
		var predictedSuffix int
		predicted := false

		switch {
		case havePrev && haveNext && prevBase == nextBase && nextSuffix-prevSuffix == 2:
			predictedBase, predictedSuffix, predicted = prevBase, prevSuffix+1, true
		case havePrev && !haveNext:
			predictedBase, predictedSuffix, predicted = prevBase, prevSuffix+1, true
		case haveNext && !havePrev && nextSuffix > 1:
			predictedBase, predictedSuffix, predicted = nextBase, nextSuffix-1, true
		}

		if !predicted {
			continue
		}

		prefix := joinBase(predictedBase, predictedSuffix)
		e.Type = model.TypeHeader
		e.Text = prefix + " " + e.Text
		e.HeaderLevel = levelOf(prefix)
		out[i] = e
	}

	return out
}

func findPrecedingHeaderPrefix(elements []model.Element, from int) (base string, suffix int, ok bool) {
	for i := from - 1; i >= 0; i-- {
		if elements[i].Type != model.TypeHeader {
			continue
		}
		prefix, matched := headerPrefix(elements[i].Text)
		if !matched {
			continue
		}
		return numericSuffix(prefix)
	}
	return "", 0, false
}

func findFollowingHeaderPrefix(elements []model.Element, from int) (base string, suffix int, ok bool) {
	for i := from + 1; i < len(elements); i++ {
		if elements[i].Type != model.TypeHeader {
			continue
		}
		prefix, matched := headerPrefix(elements[i].Text)
		if !matched {
			continue
		}
		return numericSuffix(prefix)
	}
	return "", 0, false
}
