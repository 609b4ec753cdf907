package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens binding errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
