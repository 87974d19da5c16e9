// Package model defines Element, the single typed atom carried through
// every stage of the layout reconstruction pipeline, and the merge policy
// that governs when two elements may be combined into one.
//
// Element is a flat, value-type struct rather than an interface with one
// concrete type per kind: every pipeline stage (page filter, detector,
// merger, optimizer) is a uniform transform over a homogeneous []Element
// slice, so a single struct with an exhaustive switch on Type avoids an
// interface-per-variant tax for no benefit here. See DESIGN.md for the
// reasoning behind this choice.
package model
