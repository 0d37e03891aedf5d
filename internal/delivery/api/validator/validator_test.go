package validator

import (
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Type     string `json:"type" validate:"required,oneof=admin seller buyer"`
	Quantity int    `form:"qty" validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		input       signupForm
		wantDetails string
	}{
		{
			name:  "valid",
			input: signupForm{Email: "a@b.lk", Type: "seller"},
		},
		{
			name:        "reports json names",
			input:       signupForm{Email: "nope", Type: "guest"},
			wantDetails: "email: must be a valid email; type: must be one of [admin seller buyer]",
		},
		{
			name:        "falls back to form tag",
			input:       signupForm{Email: "a@b.lk", Type: "buyer", Quantity: -1},
			wantDetails: "qty: must be at least 0",
		},
		{
			name:        "required",
			input:       signupForm{Type: "buyer"},
			wantDetails: "email: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantDetails == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := New().Validate("plain string")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
