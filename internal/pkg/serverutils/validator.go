package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation; the error handler middleware turns
// validator.ValidationErrors into per-field 400 responses.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
