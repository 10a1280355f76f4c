package api

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs the shared validator instance into echo's
// c.Validate, so handler-level binds and use-case rule sets run the same
// constraint engine.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
