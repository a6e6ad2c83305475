package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator wires the custom field tags used by the request DTOs.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		_, err := ValidateUsername(fl.Field().String())
		return err == nil
	})
	_ = Validate.RegisterValidation("plainname", func(fl validator.FieldLevel) bool {
		_, err := ValidateName(fl.Field().String())
		return err == nil
	})
	_ = Validate.RegisterValidation("hexcolor3or6", func(fl validator.FieldLevel) bool {
		_, err := ValidateTagColor(fl.Field().String())
		return err == nil
	})
	_ = Validate.RegisterValidation("tagslug", func(fl validator.FieldLevel) bool {
		_, err := ValidateTagSlug(fl.Field().String())
		return err == nil
	})
}
