// file: internals/helpers/validation_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "StudentFullName", want: "student_full_name"},
		{in: "Amount", want: "amount"},
		{in: "already_snake", want: "already_snake"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toSnake(tt.in))
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		FullName string `validate:"required,min=3"`
		Email    string `validate:"required,email"`
		Amount   int64  `validate:"gt=0"`
	}

	t.Run("valid passes", func(t *testing.T) {
		errs := ValidateStruct(payload{FullName: "Ahmad", Email: "a@b.co", Amount: 100})
		assert.Nil(t, errs)
	})

	t.Run("messages keyed by snake case field", func(t *testing.T) {
		errs := ValidateStruct(payload{FullName: "", Email: "not-an-email", Amount: 0})
		assert.Contains(t, errs, "full_name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "amount")
		assert.Equal(t, []string{"is required"}, errs["full_name"])
		assert.Equal(t, []string{"must be a valid email"}, errs["email"])
		assert.Equal(t, []string{"must be greater than 0"}, errs["amount"])
	})
}
