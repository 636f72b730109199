package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidator(t *testing.T) {
	type input struct {
		Email string `validate:"required,email"`
		Name  string `validate:"min=2"`
	}

	v := validator.New()
	err := v.Struct(input{Email: "nope", Name: "a"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(FromValidator(err), &ve))
	assert.Equal(t, "Enter a valid email address.", ve.Fields["Email"])
	assert.Equal(t, "Ensure this field has at least 2 characters.", ve.Fields["Name"])
	assert.True(t, strings.HasPrefix(ve.Error(), "validation failed: Email:"))

	plain := errors.New("boom")
	assert.Equal(t, plain, FromValidator(plain))
}
