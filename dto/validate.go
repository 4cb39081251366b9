package dto

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// raw material ICs are stored comma joined
		if err := validate.RegisterValidation("nocomma", func(fl validator.FieldLevel) bool {
			return !strings.Contains(fl.Field().String(), rawMaterialICSeparator)
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// Validate checks struct tags. The returned error is validator.ValidationErrors
// when a rule fails.
func Validate(v any) error {
	return validatorInstance().Struct(v)
}
