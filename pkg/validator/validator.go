package validator

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so bound request DTOs are checked against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator registered on the echo instance at startup
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
