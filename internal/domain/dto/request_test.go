package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       ToggleProductRequest
		expectedError bool
	}{
		{
			name:          "valid request",
			request:       ToggleProductRequest{ProductID: 3},
			expectedError: false,
		},
		{
			name:          "zero product id",
			request:       ToggleProductRequest{ProductID: 0},
			expectedError: true,
		},
		{
			name:          "negative product id",
			request:       ToggleProductRequest{ProductID: -1},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, ErrInvalidProductID, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdjustQuantityRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       AdjustQuantityRequest
		expectedError error
	}{
		{
			name:    "valid increment",
			request: AdjustQuantityRequest{ProductID: 3, Delta: 1},
		},
		{
			name:    "valid decrement",
			request: AdjustQuantityRequest{ProductID: 3, Delta: -2},
		},
		{
			name:          "zero product id",
			request:       AdjustQuantityRequest{ProductID: 0, Delta: 1},
			expectedError: ErrInvalidProductID,
		},
		{
			name:          "zero delta",
			request:       AdjustQuantityRequest{ProductID: 3, Delta: 0},
			expectedError: ErrInvalidDelta,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name: "validation error message format",
			validationErr: &ValidationError{
				Field:   "product_id",
				Message: "must be positive",
			},
			expected: "product_id: must be positive",
		},
		{
			name: "validation error with different field",
			validationErr: &ValidationError{
				Field:   "delta",
				Message: "must not be zero",
			},
			expected: "delta: must not be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}
