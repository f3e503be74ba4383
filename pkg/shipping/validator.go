package shipping

import (
	"github.com/arthur-debert/packex/pkg/errors"
)

// Validator checks package attributes against shipping limits
type Validator interface {
	// ValidateWeight returns a WEIGHT_EXCEEDED error when the weight is
	// over the limit, nil otherwise
	ValidateWeight(weight float64) error

	// ValidateDimensions returns a DIMENSIONS_EXCEEDED error when the
	// combined width + height + length is over the limit, nil otherwise
	ValidateDimensions(width, height, length float64) error
}

// LimitValidator is a stateless Validator driven by a Limits value.
//
// Negative, zero, and non-finite values are deliberately not rejected;
// only the upper limits are enforced.
type LimitValidator struct {
	limits Limits
}

// NewValidator creates a Validator for the given limits
func NewValidator(limits Limits) *LimitValidator {
	return &LimitValidator{limits: limits}
}

// ValidateWeight implements Validator
func (v *LimitValidator) ValidateWeight(weight float64) error {
	if weight > v.limits.MaxWeight {
		return errors.New(errors.ErrWeightExceeded, MsgTooHeavy).
			WithDetail("weight", weight).
			WithDetail("maxWeight", v.limits.MaxWeight)
	}
	return nil
}

// ValidateDimensions implements Validator
func (v *LimitValidator) ValidateDimensions(width, height, length float64) error {
	sum := width + height + length
	if sum > v.limits.MaxDimensionSum {
		return errors.New(errors.ErrDimensionsExceeded, MsgTooBig).
			WithDetail("dimensionSum", sum).
			WithDetail("maxDimensionSum", v.limits.MaxDimensionSum)
	}
	return nil
}
