package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_EmptyIsNil(t *testing.T) {
	var v ValidationError
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Err())

	var nilV *ValidationError
	assert.False(t, nilV.HasErrors())
	assert.Equal(t, "validation failed", nilV.Error())
}

func TestValidationError_AddAndMessage(t *testing.T) {
	var v ValidationError
	v.Add("title", "required")
	v.Add("content", "required")
	v.Add("title", "ignored second message")

	require.True(t, v.HasErrors())
	assert.Equal(t, "required", v.FieldErrors["title"])
	assert.Equal(t, "validation failed: content: required; title: required", v.Error())
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	v := &ValidationError{}
	v.Add("email", "invalid")

	wrapped := fmt.Errorf("register: %w", v.Err())
	assert.True(t, errors.Is(wrapped, ErrValidation))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "invalid", ve.FieldErrors["email"])
}
