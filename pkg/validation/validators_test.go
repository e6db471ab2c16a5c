package validation_test

import (
	"errors"
	"testing"

	"go-resume-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string  `json:"name" validate:"required,max=5,no_emoji"`
	StartDate *string `json:"startDate" validate:"omitempty,ymd_date"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

func strPtr(s string) *string { return &s }

func TestValidatorUsesJSONNames(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{Name: "", StartDate: strPtr("2024-13-40"), Email: strPtr("nope")})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 3)
	assert.Contains(t, messages[0], "name: This value should not be blank.")
	assert.Contains(t, messages[1], "startDate: This value is not a valid date.")
	assert.Contains(t, messages[2], "email: This value is not a valid email address.")
}

func TestYMDDateAcceptsValidDates(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(sample{Name: "ok", StartDate: strPtr("2021-05-01")}))
	assert.NoError(t, v.Struct(sample{Name: "ok"}))
}

func TestNoEmoji(t *testing.T) {
	v := validation.New()
	assert.Error(t, v.Struct(sample{Name: "hi 🚀"}))
}

func TestMessageJoins(t *testing.T) {
	v := validation.New()
	err := v.Struct(sample{Name: "too long name"})
	assert.Equal(t, "name: This value is too long. It should have 5 characters or less.", validation.Message(err))

	assert.Equal(t, "boom", validation.Message(errors.New("boom")))
}
