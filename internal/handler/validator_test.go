package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	Type   string `validate:"required,material"`
	Amount int    `validate:"min=0,max=64"`
}

func TestValidator_Material(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", "DIAMOND_SWORD", false},
		{"lower case", "diamond_sword", false},
		{"spaces", "player head", false},
		{"missing", "", true},
		{"unknown", "BEDROCK_SWORD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testStack{Type: tt.input, Amount: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(testStack{Type: "BEDROCK_SWORD", Amount: 65})
	require.Error(t, err)

	errs := FormatValidationError(err)
	assert.Equal(t, "Unknown material 'BEDROCK_SWORD'", errs["type"])
	assert.Equal(t, "Must be at most 64", errs["amount"])

	errs = FormatValidationError(v.ValidateStruct(testStack{Amount: -1}))
	assert.Equal(t, "This field is required", errs["type"])
	assert.Equal(t, "Must be at least 0", errs["amount"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
