package shipping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/packex/pkg/errors"
	"github.com/arthur-debert/packex/pkg/shipping"
)

func TestValidateWeight(t *testing.T) {
	validator := shipping.NewValidator(shipping.DefaultLimits())

	tests := []struct {
		name    string
		weight  float64
		wantErr bool
	}{
		{name: "light_package", weight: 10, wantErr: false},
		{name: "exactly_at_limit", weight: 50, wantErr: false},
		{name: "just_over_limit", weight: 50.01, wantErr: true},
		{name: "far_over_limit", weight: 60, wantErr: true},
		{name: "zero_weight_allowed", weight: 0, wantErr: false},
		{name: "negative_weight_allowed", weight: -5, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateWeight(tt.weight)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrWeightExceeded))
			assert.Equal(t, shipping.MsgTooHeavy, errors.UserMessage(err))
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	validator := shipping.NewValidator(shipping.DefaultLimits())

	tests := []struct {
		name                  string
		width, height, length float64
		wantErr               bool
	}{
		{name: "small_package", width: 10, height: 10, length: 10, wantErr: false},
		{name: "sum_exactly_at_limit", width: 20, height: 20, length: 10, wantErr: false},
		{name: "sum_just_over_limit", width: 20, height: 20, length: 10.01, wantErr: true},
		{name: "sum_far_over_limit", width: 20, height: 20, length: 20, wantErr: true},
		{name: "single_huge_dimension", width: 51, height: 0, length: 0, wantErr: true},
		{name: "zero_dimensions_allowed", width: 0, height: 0, length: 0, wantErr: false},
		{name: "negative_offsets_sum", width: 60, height: -20, length: 5, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDimensions(tt.width, tt.height, tt.length)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDimensionsExceeded))
			assert.Equal(t, shipping.MsgTooBig, errors.UserMessage(err))
		})
	}
}

func TestValidateWeightCustomLimits(t *testing.T) {
	validator := shipping.NewValidator(shipping.Limits{MaxWeight: 100, MaxDimensionSum: 200})

	assert.NoError(t, validator.ValidateWeight(75))
	assert.Error(t, validator.ValidateWeight(101))
	assert.NoError(t, validator.ValidateDimensions(60, 60, 60))
	assert.Error(t, validator.ValidateDimensions(100, 100, 1))
}
