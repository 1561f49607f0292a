package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps validator/v10. The required tag rejects zero
// values, which is exactly the presence rule this API documents: an empty
// string or a 0 counts as a missing field.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
