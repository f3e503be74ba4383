package shipping

// Calculator prices a validated package
type Calculator interface {
	Cost(pkg Package) float64
}

// DivisorCalculator computes cost as width * height * length * weight
// divided by a fixed divisor. It performs no bounds checking; run the
// Validator first.
type DivisorCalculator struct {
	divisor float64
}

// NewCalculator creates a Calculator with the given divisor
func NewCalculator(divisor float64) *DivisorCalculator {
	return &DivisorCalculator{divisor: divisor}
}

// Cost implements Calculator. No rounding happens here; the presentation
// layer formats the value to two decimal places.
func (c *DivisorCalculator) Cost(pkg Package) float64 {
	return pkg.Width * pkg.Height * pkg.Length * pkg.Weight / c.divisor
}
