package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string  `validate:"required,email"`
	ID    string  `validate:"required,uuid"`
	Score float64 `validate:"gte=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	in := sampleInput{
		Email: "user@example.com",
		ID:    uuid.NewString(),
		Score: 4.5,
	}
	assert.NoError(t, ValidateStruct(in))
}

func TestValidateStruct_Invalid(t *testing.T) {
	in := sampleInput{
		Email: "not-an-email",
		ID:    "",
		Score: -1,
	}

	err := ValidateStruct(in)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := GetValidationFields(err)
	assert.Equal(t, "Email must be a valid email", fields["Email"])
	assert.Equal(t, "ID is required", fields["ID"])
	assert.Equal(t, "Score must be greater than or equal to 0", fields["Score"])
}

func TestIsValidationError_OtherError(t *testing.T) {
	assert.False(t, IsValidationError(assert.AnError))
	assert.Nil(t, GetValidationFields(assert.AnError))
}

func TestValidateUUID(t *testing.T) {
	assert.NoError(t, ValidateUUID(uuid.NewString()))
	assert.Error(t, ValidateUUID("abc"))
	assert.Error(t, ValidateUUID(""))
}
