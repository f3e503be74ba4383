package shipping

// Limits holds the shipping-service acceptance limits
type Limits struct {
	MaxWeight       float64
	MaxDimensionSum float64
}

// DefaultLimits returns the stock Package Express limits. The config
// package layers user overrides on top of these.
func DefaultLimits() Limits {
	return Limits{
		MaxWeight:       50,
		MaxDimensionSum: 50,
	}
}
