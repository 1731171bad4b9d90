package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDto struct {
	Content string `validate:"required,min=10"`
	Role    string `validate:"omitempty,oneof=user assistant"`
}

var sampleMessages = ValidationMessages{
	"Content.required": "No content provided",
	"Content.min":      "Content too short",
	"Role":             "Invalid role",
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dto     sampleDto
		message string
	}{
		{"missing", sampleDto{}, "No content provided"},
		{"too short", sampleDto{Content: "short"}, "Content too short"},
		{"field fallback", sampleDto{Content: "long enough content", Role: "admin"}, "Invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.dto, sampleMessages)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestValidate_CountsCharacters(t *testing.T) {
	// 10자, 30바이트
	assert.NoError(t, Validate(&sampleDto{Content: "가나다라마바사아자차"}, sampleMessages))
	assert.Error(t, Validate(&sampleDto{Content: "가나다라마"}, sampleMessages))
}

func TestValidate_UnknownMessage(t *testing.T) {
	err := Validate(&sampleDto{Content: "short"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
}
