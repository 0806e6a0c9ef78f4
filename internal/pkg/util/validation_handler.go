package util

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 DTO, returns validator.ValidationErrors on rule failures
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// FirstViolation reports the field and rule of the first failed constraint.
func FirstViolation(err error) (field, rule string, ok bool) {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "", "", false
	}
	return vErrs[0].Field(), vErrs[0].Tag(), true
}
