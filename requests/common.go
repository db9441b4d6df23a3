package requests

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CommonValidationErrors maps validator failures to per-field messages keyed
// "Field_tag" in the messages table.
func CommonValidationErrors(err error, messages map[string]string) map[string]string {
	out := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return out
	}

	for _, fieldErr := range validationErrors {
		key := fieldErr.Field() + "_" + fieldErr.Tag()
		if msg, ok := messages[key]; ok {
			out[fieldErr.Field()] = msg
		} else {
			out[fieldErr.Field()] = "Giá trị không hợp lệ"
		}
	}
	return out
}
