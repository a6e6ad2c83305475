package utils

import (
	"testing"

	"Foodgram-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	for _, valid := range []string{"alice", "alice.cook", "a+b@c-d_e", "Пользователь42"} {
		got, err := ValidateUsername(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, got)
	}

	for _, reserved := range []string{"me", "Me", "ME", "mE"} {
		_, err := ValidateUsername(reserved)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, reserved)
	}

	for _, invalid := range []string{"", "alice cook", "alice!", "a#b"} {
		_, err := ValidateUsername(invalid)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, invalid)
	}
}

func TestValidateName(t *testing.T) {
	for _, valid := range []string{"Alice", "Alice Cook", "Алиса", "Ёлка"} {
		got, err := ValidateName(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, got)
	}

	_, err := ValidateName("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ValidateName("Alice99")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateNameReportsOffendingChars(t *testing.T) {
	_, err := ValidateName("Al1ce! C00k!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	// each offending character is reported once, sorted
	assert.Contains(t, err.Error(), `"!01"`)
}

func TestValidateTagColor(t *testing.T) {
	for _, valid := range []string{"#E26C2D", "#fff", "#000000", "#AbC"} {
		got, err := ValidateTagColor(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, got)
	}

	for _, invalid := range []string{"", "E26C2D", "#GGG", "#12345", "#1234567", "red"} {
		_, err := ValidateTagColor(invalid)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, invalid)
	}
}

func TestValidateTagSlug(t *testing.T) {
	for _, valid := range []string{"breakfast", "quick-meals", "veg_an", "Tag42"} {
		got, err := ValidateTagSlug(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, got)
	}

	for _, invalid := range []string{"", "завтрак", "two words", "slug!"} {
		_, err := ValidateTagSlug(invalid)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, invalid)
	}
}
