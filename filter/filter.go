// Package filter implements the Page Filter (§4.3): dropping observations
// that fall entirely within configured header/footer strips before they are
// typed into Elements.
package filter

import "github.com/tsawler/layoutrecon/model"

// Strip is a normalized [lo, hi] vertical band of the page, e.g. a running
// header or footer region.
type Strip struct {
	Lo, Hi float64
}

// Config mirrors the §3 "processing.*" page-filter options.
type Config struct {
	Enabled bool
	Header  Strip
	Footer  Strip
}

// within reports whether a box (given by its minimum and maximum Y) lies
// entirely inside the strip: minY >= Lo and maxY <= Hi (§4.3).
func within(minY, maxY float64, s Strip) bool {
	return minY >= s.Lo && maxY <= s.Hi
}

// Apply drops every observation whose box lies entirely within the
// configured header or footer strip. When cfg.Enabled is false, obs is
// returned unchanged.
func Apply(obs []model.Observation, cfg Config) []model.Observation {
	if !cfg.Enabled {
		return obs
	}

	kept := make([]model.Observation, 0, len(obs))
	for _, o := range obs {
		minY, maxY := o.BoundingBox.Bottom(), o.BoundingBox.Top()
		if within(minY, maxY, cfg.Header) || within(minY, maxY, cfg.Footer) {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}
