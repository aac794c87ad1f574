package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("not_future", validateNotFuture)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNotFuture(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	parsed, ok := ParseEmrDatetime(value)
	if !ok {
		return false
	}
	return !parsed.After(time.Now())
}
