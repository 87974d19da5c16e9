package model

import (
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tsawler/layoutrecon/geom"
)

// Standard PDF page dimensions, in points, used to convert a normalized
// merge distance into absolute units when a threshold is configured as
// "absolute" rather than "normalized" (§3 configuration, §4.2).
const (
	standardPageWidth  = 612.0
	standardPageHeight = 792.0
)

// MergeConfig holds the thresholds and unit selections from §3's
// "processing.*" configuration options that govern the merge policy.
type MergeConfig struct {
	// MergeDistanceThreshold gates the side-by-side (vertically stacked)
	// relation. Default 0.02.
	MergeDistanceThreshold float64
	// HorizontalMergeThreshold gates the same-line relation. Default 0.15.
	HorizontalMergeThreshold float64
	// IsMergeDistanceNormalized selects whether MergeDistanceThreshold is
	// interpreted as a [0,1] fraction of page height or as absolute points.
	IsMergeDistanceNormalized bool
	// IsHorizontalMergeThresholdNormalized selects whether
	// HorizontalMergeThreshold is a [0,1] fraction of page width or
	// absolute points.
	IsHorizontalMergeThresholdNormalized bool
}

// DefaultMergeConfig returns the §4.2 defaults used when no configuration
// is supplied.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		MergeDistanceThreshold:               0.02,
		HorizontalMergeThreshold:             0.15,
		IsMergeDistanceNormalized:            true,
		IsHorizontalMergeThresholdNormalized: true,
	}
}

// Relation classifies the geometric relationship between two candidate
// elements for merge purposes (§4.2).
type Relation int

const (
	RelationDiagonal Relation = iota
	RelationSameLine
	RelationSideBySide
)

// alignTol is the tolerance used to classify a pair as same-line or
// side-by-side before the merge-policy distance check runs. It is distinct
// from the same-line merger's own 0.08 tolerance (§4.4), which operates on
// already-typed, already-sorted page elements rather than raw candidates.
const alignTol = 0.02

func classify(a, b geom.Box) Relation {
	switch {
	case geom.VerticallyAligned(a, b, alignTol):
		return RelationSameLine
	case geom.HorizontallyAligned(a, b, alignTol):
		return RelationSideBySide
	default:
		return RelationDiagonal
	}
}

func convertDistance(normalizedDist, axisDim float64, normalized bool) float64 {
	if normalized {
		return normalizedDist
	}
	return normalizedDist * axisDim
}

// CanMerge reports whether a and b may be combined under cfg (§4.2): both
// types must be mergeable, both on the same page, and the geometric
// relation's distance must fall within the corresponding threshold. A pair
// classified same-line or side-by-side is demoted to diagonal if its
// normalized distance exceeds 0.15, regardless of configured thresholds.
func CanMerge(a, b Element, cfg MergeConfig) bool {
	if !a.Type.IsMergeable() || !b.Type.IsMergeable() {
		return false
	}
	if a.PageNumber != b.PageNumber {
		return false
	}

	rel := classify(a.BoundingBox, b.BoundingBox)
	normDist := geom.MergeDistance(a.BoundingBox, b.BoundingBox)

	if rel != RelationDiagonal && normDist > 0.15 {
		rel = RelationDiagonal
	}

	switch rel {
	case RelationSameLine:
		dist := convertDistance(normDist, standardPageWidth, cfg.IsHorizontalMergeThresholdNormalized)
		return dist <= cfg.HorizontalMergeThreshold
	case RelationSideBySide:
		dist := convertDistance(normDist, standardPageHeight, cfg.IsMergeDistanceNormalized)
		return dist <= cfg.MergeDistanceThreshold
	default:
		// Open Question (§9): the source's diagonal case measures distance
		// against page height even when the horizontal threshold is
		// width-normalized. Preserved here rather than "fixed", per spec.
		dist := convertDistance(normDist, standardPageHeight, cfg.IsMergeDistanceNormalized)
		threshold := math.Min(cfg.HorizontalMergeThreshold, cfg.MergeDistanceThreshold)
		return dist <= threshold
	}
}

// needsSpaceSeparator reports whether the given BCP-47-ish language tag
// uses whitespace-delimited words and therefore needs an inserted space
// when joining two text fragments (§4.2). Chinese (simplified or
// traditional) does not; everything else, including untagged/unknown
// input, is treated as a Latin-style space-using script.
func needsSpaceSeparator(lang string) bool {
	return lang != "zh-Hans" && lang != "zh-Hant"
}

func hasLeadingSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return isSpaceRune(r)
}

func hasTrailingSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return isSpaceRune(r)
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '　'
}

// Merge combines a (the earlier-reading-order element) and b into one
// element per §4.2/§3: the union box, concatenated text with a
// language-aware separator, the minimum confidence, and a's type and
// HeaderLevel. Metadata["merged_from"] records both input IDs.
func Merge(a, b Element, lang string) Element {
	sep := ""
	if needsSpaceSeparator(lang) && !hasTrailingSpace(a.Text) && !hasLeadingSpace(b.Text) {
		sep = " "
	}

	merged := a
	merged.ID = uuid.NewString()
	merged.BoundingBox = a.BoundingBox.Union(b.BoundingBox)
	merged.Text = a.Text + sep + b.Text
	merged.Confidence = math.Min(a.Confidence, b.Confidence)
	merged.ProcessedAt = a.ProcessedAt

	mergedFrom := a.ID + "," + b.ID
	if existing, ok := a.Metadata["merged_from"]; ok {
		mergedFrom = existing + "," + b.ID
	}
	merged = merged.WithMetadata("merged_from", mergedFrom)

	return merged
}
