// file: internals/helpers/validation.go
package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Satu instance validator untuk seluruh app (validator.Validate thread-safe).
var Validate = validator.New()

// ValidateStruct menjalankan tag `validate` dan mengubah hasilnya ke bentuk
// {field: [messages]} yang dipakai JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := toSnake(fe.Field())
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
