// Package shipping holds the package model and the validation and pricing
// rules for Package Express shipments.
//
// A Package is a plain value: it carries no invariant of its own, and
// validity is an explicit check performed by a Validator after the fields
// have been filled in. The Calculator prices a package without re-checking
// limits; callers are expected to validate first.
package shipping

// Package is the in-memory record of one shipment's weight and dimensions.
// All values are in implied fixed units (pounds and inches).
type Package struct {
	Weight float64
	Width  float64
	Height float64
	Length float64
}

// DimensionSum returns the combined width + height + length
func (p Package) DimensionSum() float64 {
	return p.Width + p.Height + p.Length
}
