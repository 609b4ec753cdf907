package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidate_UsesJSONNames(t *testing.T) {
	errs := Validate(sample{Name: "a", Email: "nope"})

	assert.Equal(t, map[string]string{"name": "min", "email": "email"}, errs)
}

func TestValidate_OK(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "Ann", Email: "ann@example.com"}))
}

func TestVar(t *testing.T) {
	assert.True(t, Var("ann@example.com", "required,email"))
	assert.False(t, Var("", "required,email"))
}
