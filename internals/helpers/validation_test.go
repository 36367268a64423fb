package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Name  string `json:"name" validate:"required"`
	Code  string `json:"code" validate:"omitempty,even_len"`
	Count int    `json:"count" validate:"gte=1"`
}

func TestValidationErrorsToMap_UsesJSONNames(t *testing.T) {
	RegisterValidation("even_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	}, "{0} must have an even length")

	err := Validate.Struct(sampleReq{Code: "abc"})
	require.Error(t, err)

	m, ok := ValidationErrorsToMap(err)
	require.True(t, ok)
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "count")
	assert.Equal(t, []string{"code must have an even length"}, m["code"])
}

func TestValidationErrorsToMap_OtherError(t *testing.T) {
	_, ok := ValidationErrorsToMap(assert.AnError)
	assert.False(t, ok)
}
