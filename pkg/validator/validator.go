package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator. Every
// query DTO binds through it, so enum filters carry oneof tags and fail here
// before any handler logic runs.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the default tag set
func New() *CustomValidator {
	return &CustomValidator{v: validator.New()}
}

// Validate checks struct tags on i and returns the first violation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
