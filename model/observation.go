package model

import "github.com/tsawler/layoutrecon/geom"

// Observation is a single raw positioned-text reading from the OCR
// collaborator (§6): a bag of (text, normalized bounding box, confidence)
// tuples per page, before any typing or merging has happened.
type Observation struct {
	Text        string
	BoundingBox geom.Box
	Confidence  float64
}
