package validate

import "github.com/go-playground/validator/v10"

var structValidator = validator.New()

// Struct runs go-playground validation tags on a request DTO.
func Struct(s any) error {
	return structValidator.Struct(s)
}
